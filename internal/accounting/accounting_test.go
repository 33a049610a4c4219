package accounting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordDeleteAtPositionZeroNotCounted(t *testing.T) {
	r := NewRecorder()
	r.RecordDelete(0, 0)
	r.RecordDelete(0, 5)
	require.True(t, r.Flush().IsZero())
}

func TestRecordDeleteSelectionLength(t *testing.T) {
	tests := []struct {
		name         string
		cursorPos    int
		selectionLen uint32
		want         uint32
	}{
		{name: "no selection counts one", cursorPos: 4, selectionLen: 0, want: 1},
		{name: "selection counts its length", cursorPos: 7, selectionLen: 3, want: 3},
		{name: "single char selection", cursorPos: 1, selectionLen: 1, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRecorder()
			r.RecordDelete(tc.cursorPos, tc.selectionLen)
			require.Equal(t, tc.want, r.Flush().DeletedChars)
		})
	}
}

func TestCountersAccumulate(t *testing.T) {
	r := NewRecorder()
	r.RecordInsert(1)
	r.RecordInsert(1)
	r.RecordInsertPunctuation(1)
	r.RecordDelete(10, 0)
	r.RecordDeleteN(11)

	got := r.Flush()
	require.Equal(t, Counters{InsertedChars: 2, InsertedPunctuation: 1, DeletedChars: 12}, got)
}

func TestFlushResetsCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordInsert(3)

	first := r.Flush()
	require.Equal(t, uint32(3), first.InsertedChars)

	second := r.Flush()
	require.True(t, second.IsZero())
}

func TestResetDiscardsCounts(t *testing.T) {
	r := NewRecorder()
	r.RecordInsert(2)
	r.RecordDeleteN(4)
	r.Reset()
	require.True(t, r.Flush().IsZero())
}
