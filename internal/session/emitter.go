package session

import "github.com/openkbd/voiceime/internal/accounting"

// Emitter receives session telemetry. Implementations must be cheap; the
// session calls them inline on the event thread.
type Emitter interface {
	EmitSessionStarted()
	EmitSessionEnded(outcome string)
	EmitModification(accounting.Counters)
	EmitSuggestionChosen()
}

// noopEmitter preserves session flow when no telemetry is wired.
type noopEmitter struct{}

func (noopEmitter) EmitSessionStarted()                  {}
func (noopEmitter) EmitSessionEnded(string)              {}
func (noopEmitter) EmitModification(accounting.Counters) {}
func (noopEmitter) EmitSuggestionChosen()                {}
