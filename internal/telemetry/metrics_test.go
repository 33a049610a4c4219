package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/openkbd/voiceime/internal/accounting"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader for
// programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

// counterValue sums the data points of the named Int64 counter.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, met := range scope.Metrics {
			if met.Name != name {
				continue
			}
			sum, ok := met.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestEmitModification(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.EmitModification(accounting.Counters{
		InsertedChars:       4,
		InsertedPunctuation: 1,
		DeletedChars:        2,
	})

	require.Equal(t, int64(4), counterValue(t, reader, "voiceime.chars.inserted"))
	require.Equal(t, int64(1), counterValue(t, reader, "voiceime.punctuation.inserted"))
	require.Equal(t, int64(2), counterValue(t, reader, "voiceime.chars.deleted"))
}

func TestEmitModificationZeroSnapshotRecordsNothing(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.EmitModification(accounting.Counters{})

	require.Equal(t, int64(0), counterValue(t, reader, "voiceime.chars.inserted"))
	require.Equal(t, int64(0), counterValue(t, reader, "voiceime.chars.deleted"))
}

func TestEmitSessionLifecycle(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.EmitSessionStarted()
	m.EmitSessionStarted()
	m.EmitSessionEnded("committed")
	m.EmitSuggestionChosen()

	require.Equal(t, int64(2), counterValue(t, reader, "voiceime.sessions.started"))
	require.Equal(t, int64(1), counterValue(t, reader, "voiceime.sessions.ended"))
	require.Equal(t, int64(1), counterValue(t, reader, "voiceime.suggestions.chosen"))
}
