package session

import (
	"strings"
	"unicode"

	"github.com/openkbd/voiceime/internal/alternatives"
	"github.com/openkbd/voiceime/internal/fsm"
)

// OnRecognitionResult consumes one recognizer delivery. With candidates it
// ingests the alternatives, highlights the best candidate, and returns the
// insertion for the host to apply; an empty delivery drops back to Idle
// untouched. Deliveries outside Listening are stale and ignored.
func (s *Session) OnRecognitionResult(
	candidates []string,
	alternativesByWord map[string][]string,
	capitalizeFirstWord bool,
) TextEdit {
	if s.state != fsm.StateListening {
		s.logger.Debug("recognition result ignored outside listening",
			"state", string(s.state))
		return TextEdit{}
	}

	s.transition(fsm.EventResults)

	if len(candidates) == 0 {
		s.transition(fsm.EventDiscard)
		s.logger.Info("recognition returned no candidates", "session_id", s.sessionID)
		return TextEdit{}
	}

	best := candidates[0]
	if capitalizeFirstWord {
		best = alternatives.UpperFirst(best)
	}

	s.cache.Ingest(alternativesByWord)

	s.insertedText = best
	s.cursorPos = len([]rune(best))
	s.selectionSpan = 0
	s.afterVoice = true

	s.transition(fsm.EventHighlight)
	s.logger.Info("voice text highlighted",
		"session_id", s.sessionID,
		"chars", len([]rune(best)),
		"alternative_words", s.cache.Len(),
	)
	return TextEdit{InsertText: best}
}

// OnCursorWord reports that the cursor is touching word and returns the
// case-adapted alternatives to display, if any are cached. A miss surfaces
// nothing and changes no state.
func (s *Session) OnCursorWord(word string) ([]string, bool) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return nil, false
	}

	suggestions, ok := s.cache.Lookup(trimmed)
	if !ok {
		return nil, false
	}

	exemplarIsUpper := unicode.IsUpper([]rune(trimmed)[0])
	s.showingSuggestions = true
	return alternatives.AdaptCase(suggestions, exemplarIsUpper), true
}

// OnSuggestionChosen records that the user replaced oldWord with a displayed
// alternative. Accumulated counters are flushed before the substitution so
// prior edits are attributed to the original word.
func (s *Session) OnSuggestionChosen(oldWord, chosen string) {
	if !s.showingSuggestions {
		s.logger.Debug("suggestion choice ignored; no suggestions showing")
		return
	}

	if s.afterVoice {
		s.emitter.EmitModification(s.recorder.Flush())
		s.emitter.EmitSuggestionChosen()
	}

	s.cache.Substitute(oldWord, chosen)
	s.transition(fsm.EventSubstitute)
	s.logger.Info("suggestion chosen", "session_id", s.sessionID)
}

// OnCharacterTyped observes one typed character. Typing finalizes
// highlighted voice text; while voice text is live the insert is counted.
// Multi-unit inputs are deliberately approximated as one character.
func (s *Session) OnCharacterTyped() {
	s.commitHighlighted()
	if s.afterVoice {
		s.recorder.RecordInsert(1)
	}
}

// OnSeparatorTyped observes one typed separator/punctuation character.
func (s *Session) OnSeparatorTyped() {
	s.commitHighlighted()
	if s.afterVoice {
		s.recorder.RecordInsertPunctuation(1)
	}
}

// OnBackspace observes one backspace. selectionLen is the length of the
// selection being deleted, zero when the host did not measure one; in that
// case the span tracked via OnCursorMoved is used.
func (s *Session) OnBackspace(selectionLen uint32) {
	if !s.afterVoice {
		return
	}
	if selectionLen == 0 && s.selectionSpan > 0 {
		selectionLen = uint32(s.selectionSpan)
	}
	s.recorder.RecordDelete(s.cursorPos, selectionLen)
}

// OnCursorMoved tracks the cursor position and selection span while voice
// text is live, for delete accounting.
func (s *Session) OnCursorMoved(selStart, selEnd int) {
	if !s.afterVoice {
		return
	}
	s.cursorPos = selEnd
	span := selEnd - selStart
	if span < 0 {
		span = -span
	}
	s.selectionSpan = span
}

// OnRevert deletes the highlighted voice text. The whole insertion counts as
// deleted characters, and the returned edit tells the host what to remove.
func (s *Session) OnRevert() TextEdit {
	if s.state != fsm.StateHighlighted {
		s.logger.Debug("revert ignored outside highlighted", "state", string(s.state))
		return TextEdit{}
	}

	deleted := uint32(len([]rune(s.insertedText)))
	s.recorder.RecordDeleteN(deleted)
	s.transition(fsm.EventRevert)
	s.insertedText = ""
	s.logger.Info("voice text reverted", "session_id", s.sessionID, "chars", deleted)
	return TextEdit{DeleteChars: deleted}
}

// commitHighlighted finalizes composed voice text on the first keystroke
// after delivery. Counters keep accumulating until an explicit flush.
func (s *Session) commitHighlighted() {
	if s.state == fsm.StateHighlighted {
		s.transition(fsm.EventCommit)
	}
}
