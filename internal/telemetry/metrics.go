// Package telemetry records voice-session quality metrics through the
// OpenTelemetry Metrics API. Tests should construct [Metrics] with a custom
// metric.MeterProvider to avoid cross-test pollution.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/openkbd/voiceime/internal/accounting"
)

// meterName is the instrumentation scope name used for all voiceime metrics.
const meterName = "github.com/openkbd/voiceime"

// Metrics holds the OpenTelemetry instruments for voice-session telemetry.
// The underlying OTel types handle their own synchronisation.
type Metrics struct {
	// SessionsStarted counts voice sessions that entered Listening.
	SessionsStarted metric.Int64Counter

	// SessionsEnded counts completed sessions. Use with attribute:
	//   attribute.String("outcome", ...)
	SessionsEnded metric.Int64Counter

	// InsertedChars counts characters the user typed into live voice text.
	InsertedChars metric.Int64Counter

	// InsertedPunctuation counts separators typed into live voice text.
	InsertedPunctuation metric.Int64Counter

	// DeletedChars counts characters the user deleted from live voice text.
	DeletedChars metric.Int64Counter

	// SuggestionsChosen counts accepted word alternatives.
	SuggestionsChosen metric.Int64Counter
}

// NewMetrics creates a fully initialised Metrics using the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.SessionsStarted, err = m.Int64Counter("voiceime.sessions.started",
		metric.WithDescription("Voice sessions that began listening.")); err != nil {
		return nil, err
	}
	if met.SessionsEnded, err = m.Int64Counter("voiceime.sessions.ended",
		metric.WithDescription("Voice sessions that ended, by outcome.")); err != nil {
		return nil, err
	}
	if met.InsertedChars, err = m.Int64Counter("voiceime.chars.inserted",
		metric.WithDescription("Characters typed while voice text was live.")); err != nil {
		return nil, err
	}
	if met.InsertedPunctuation, err = m.Int64Counter("voiceime.punctuation.inserted",
		metric.WithDescription("Separators typed while voice text was live.")); err != nil {
		return nil, err
	}
	if met.DeletedChars, err = m.Int64Counter("voiceime.chars.deleted",
		metric.WithDescription("Characters deleted while voice text was live.")); err != nil {
		return nil, err
	}
	if met.SuggestionsChosen, err = m.Int64Counter("voiceime.suggestions.chosen",
		metric.WithDescription("Accepted word-alternative substitutions.")); err != nil {
		return nil, err
	}

	return met, nil
}

// EmitSessionStarted records one session entering Listening.
func (m *Metrics) EmitSessionStarted() {
	m.SessionsStarted.Add(context.Background(), 1)
}

// EmitSessionEnded records one finished session with its outcome state.
func (m *Metrics) EmitSessionEnded(outcome string) {
	m.SessionsEnded.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}

// EmitModification records one flushed modification-counter snapshot.
func (m *Metrics) EmitModification(counters accounting.Counters) {
	ctx := context.Background()
	if counters.InsertedChars > 0 {
		m.InsertedChars.Add(ctx, int64(counters.InsertedChars))
	}
	if counters.InsertedPunctuation > 0 {
		m.InsertedPunctuation.Add(ctx, int64(counters.InsertedPunctuation))
	}
	if counters.DeletedChars > 0 {
		m.DeletedChars.Add(ctx, int64(counters.DeletedChars))
	}
}

// EmitSuggestionChosen records one accepted alternative.
func (m *Metrics) EmitSuggestionChosen() {
	m.SuggestionsChosen.Add(context.Background(), 1)
}
