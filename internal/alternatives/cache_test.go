package alternatives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupExactThenLowercase(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"flower": {"flour", "flowers"}})

	got, ok := c.Lookup("flower")
	require.True(t, ok)
	require.Equal(t, []string{"flour", "flowers"}, got)

	got, ok = c.Lookup("Flower")
	require.True(t, ok)
	require.Equal(t, []string{"flour", "flowers"}, got)

	_, ok = c.Lookup("tower")
	require.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"run": {"ran", "rung"}})

	got, ok := c.Lookup("run")
	require.True(t, ok)
	got[0] = "mutated"

	again, ok := c.Lookup("run")
	require.True(t, ok)
	require.Equal(t, []string{"ran", "rung"}, again)
}

func TestIngestLastWriterWins(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"pair": {"pear"}})
	c.Ingest(map[string][]string{"pair": {"pare", "payer"}})

	got, ok := c.Lookup("pair")
	require.True(t, ok)
	require.Equal(t, []string{"pare", "payer"}, got)
	require.Equal(t, 1, c.Len())
}

func TestSubstituteRoundTrip(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"flower": {"flour", "flowers"}})

	c.Substitute("flower", "flour")

	_, ok := c.Lookup("flower")
	require.False(t, ok)

	got, ok := c.Lookup("flour")
	require.True(t, ok)
	require.Contains(t, got, "flower")
	require.NotContains(t, got, "flour")
	require.Equal(t, []string{"flowers", "flower"}, got)
}

func TestSubstituteCaseInsensitiveFallback(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"flower": {"flour"}})

	c.Substitute("Flower", "flour")

	got, ok := c.Lookup("flour")
	require.True(t, ok)
	require.Equal(t, []string{"flower"}, got)
}

func TestSubstituteUnknownWordIsNoop(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"flower": {"flour"}})

	c.Substitute("tower", "towers")
	require.Equal(t, 1, c.Len())

	got, ok := c.Lookup("flower")
	require.True(t, ok)
	require.Equal(t, []string{"flour"}, got)
}

func TestAdaptCase(t *testing.T) {
	require.Equal(t, []string{"Run", "Running"}, AdaptCase([]string{"run", "running"}, true))
	require.Equal(t, []string{"run"}, AdaptCase([]string{"run"}, false))
	require.Equal(t, []string{""}, AdaptCase([]string{""}, true))
}

func TestAdaptCaseReturnsFreshSlice(t *testing.T) {
	original := []string{"run", "running"}
	adapted := AdaptCase(original, true)

	require.Equal(t, []string{"run", "running"}, original)
	adapted[0] = "mutated"
	require.Equal(t, "run", original[0])
}

func TestClear(t *testing.T) {
	c := New()
	c.Ingest(map[string][]string{"one": {"won"}, "two": {"too"}})
	require.Equal(t, 2, c.Len())

	c.Clear()
	require.Equal(t, 0, c.Len())
	_, ok := c.Lookup("one")
	require.False(t, ok)
}
