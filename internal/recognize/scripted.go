// Package recognize provides recognizer implementations for the session
// core's Recognizer collaborator.
package recognize

import (
	"context"

	"github.com/openkbd/voiceime/internal/session"
)

// Result is one canned recognition delivery.
type Result struct {
	Candidates   []string
	Alternatives map[string][]string
}

// Scripted is a recognizer that replays canned results, used by the demo
// command and tests. Begin records the request; the driver fetches the next
// result and hands it to the session like a host event loop would.
type Scripted struct {
	results []Result
	next    int

	beginCalls  int
	cancelCalls int
	lastField   session.FieldContext
}

// NewScripted builds a scripted recognizer replaying results in order.
func NewScripted(results ...Result) *Scripted {
	return &Scripted{results: results}
}

// Begin records a recognition request.
func (s *Scripted) Begin(_ context.Context, field session.FieldContext) error {
	s.beginCalls++
	s.lastField = field
	return nil
}

// Cancel records a cancellation request.
func (s *Scripted) Cancel(context.Context) error {
	s.cancelCalls++
	return nil
}

// Next pops the next scripted result. After the script is exhausted it
// returns an empty delivery, which the session treats as no speech.
func (s *Scripted) Next() Result {
	if s.next >= len(s.results) {
		return Result{}
	}
	r := s.results[s.next]
	s.next++
	return r
}

// BeginCalls returns how many recognitions were requested.
func (s *Scripted) BeginCalls() int {
	return s.beginCalls
}

// CancelCalls returns how many cancellations were requested.
func (s *Scripted) CancelCalls() int {
	return s.cancelCalls
}

// LastField returns the field context of the most recent Begin.
func (s *Scripted) LastField() session.FieldContext {
	return s.lastField
}
