package recognize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openkbd/voiceime/internal/session"
)

func TestScriptedReplaysResultsInOrder(t *testing.T) {
	r := NewScripted(
		Result{Candidates: []string{"first"}},
		Result{Candidates: []string{"second"}},
	)

	require.NoError(t, r.Begin(context.Background(), session.FieldContext{Locale: "en-US"}))
	require.Equal(t, 1, r.BeginCalls())
	require.Equal(t, "en-US", r.LastField().Locale)

	require.Equal(t, []string{"first"}, r.Next().Candidates)
	require.Equal(t, []string{"second"}, r.Next().Candidates)
}

func TestScriptedExhaustedYieldsEmptyDelivery(t *testing.T) {
	r := NewScripted()
	require.Empty(t, r.Next().Candidates)
	require.Empty(t, r.Next().Alternatives)
}

func TestScriptedCountsCancels(t *testing.T) {
	r := NewScripted()
	require.NoError(t, r.Cancel(context.Background()))
	require.NoError(t, r.Cancel(context.Background()))
	require.Equal(t, 2, r.CancelCalls())
}
