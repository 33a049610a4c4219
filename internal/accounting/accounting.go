// Package accounting counts user edits applied to voice-sourced text while
// it is still live, for transcription-quality telemetry.
package accounting

// Counters is one flushed snapshot of edit activity.
type Counters struct {
	InsertedChars       uint32
	InsertedPunctuation uint32
	DeletedChars        uint32
}

// IsZero reports whether no edits were recorded.
func (c Counters) IsZero() bool {
	return c == Counters{}
}

// Recorder accumulates edit counters for one session. Reset at session
// start, flushed when the session emits telemetry.
type Recorder struct {
	counters Counters
}

// NewRecorder returns a zeroed recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordInsert counts n inserted characters.
func (r *Recorder) RecordInsert(n uint32) {
	r.counters.InsertedChars += n
}

// RecordInsertPunctuation counts n inserted punctuation/separator characters.
func (r *Recorder) RecordInsertPunctuation(n uint32) {
	r.counters.InsertedPunctuation += n
}

// RecordDelete counts one backspace at cursorPos with selectionLen selected
// characters. A backspace at position 0 deletes nothing and is not counted.
// With a selection the whole selection length is counted, otherwise 1.
func (r *Recorder) RecordDelete(cursorPos int, selectionLen uint32) {
	if cursorPos <= 0 {
		return
	}
	if selectionLen > 0 {
		r.counters.DeletedChars += selectionLen
		return
	}
	r.counters.DeletedChars++
}

// RecordDeleteN counts n deleted characters unconditionally. Used when the
// session reverts inserted voice text wholesale.
func (r *Recorder) RecordDeleteN(n uint32) {
	r.counters.DeletedChars += n
}

// Flush returns the accumulated snapshot and resets every counter to zero.
func (r *Recorder) Flush() Counters {
	out := r.counters
	r.counters = Counters{}
	return out
}

// Reset discards any accumulated counts.
func (r *Recorder) Reset() {
	r.counters = Counters{}
}
