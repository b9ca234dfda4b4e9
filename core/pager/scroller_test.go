package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counting(calls *int) UpdateFunc {
	return func(*Scroller) { *calls++ }
}

func TestScroller_Moves(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		moves     []string
		wantStart int
		wantCalls int
	}{
		{name: "Next", start: 0, moves: []string{"next"}, wantStart: 25, wantCalls: 1},
		{name: "NextAtEnd", start: 100, moves: []string{"next"}, wantStart: 100, wantCalls: 0},
		{name: "PreviousFloorsAtZero", start: 10, moves: []string{"previous"}, wantStart: 0, wantCalls: 1},
		{name: "PreviousAtStart", start: 0, moves: []string{"previous"}, wantStart: 0, wantCalls: 0},
		{name: "Last", start: 0, moves: []string{"last"}, wantStart: 100, wantCalls: 1},
		{name: "FirstAfterLast", start: 0, moves: []string{"last", "first"}, wantStart: 0, wantCalls: 2},
		{name: "RefreshForcesUpdate", start: 0, moves: []string{"refresh"}, wantStart: 0, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			s := New(tt.start, 120, 25, counting(&calls))
			for _, m := range tt.moves {
				require.NoError(t, s.Move(m))
			}
			assert.Equal(t, tt.wantStart, s.Start)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

// TestScroller_NextReachesSingleRowPage tests that a last page holding one row is reachable.
func TestScroller_NextReachesSingleRowPage(t *testing.T) {
	s := New(0, 26, 25, nil)

	assert.True(t, s.HasNext())
	s.Next()
	assert.Equal(t, 25, s.Start)
	assert.False(t, s.HasNext())
	assert.Equal(t, "26 - 26 / 26", s.Text())

	s.Last()
	assert.Equal(t, 25, s.Start)
}

func TestScroller_Text(t *testing.T) {
	assert.Equal(t, "1 - 25 / 120", New(0, 120, 25, nil).Text())
	assert.Equal(t, "101 - 120 / 120", New(100, 120, 25, nil).Text())
	assert.Equal(t, "1 - 0 / 0", New(0, 0, 25, nil).Text())
}

func TestScroller_Flags(t *testing.T) {
	empty := New(0, 0, 10, nil)
	assert.False(t, empty.IsNecessary())
	assert.False(t, empty.HasNext())
	assert.False(t, empty.HasPrevious())

	s := New(10, 30, 10, nil)
	assert.True(t, s.IsNecessary())
	assert.True(t, s.HasPrevious())
	assert.True(t, s.HasNext())
}

// TestScroller_ResetClamps tests that Reset keeps the window inside the result.
func TestScroller_ResetClamps(t *testing.T) {
	s := New(500, 42, 0, nil)

	assert.Equal(t, 1, s.Fetch)
	assert.Equal(t, 41, s.Start)

	s.Reset(-3, 10, 5)
	assert.Equal(t, 0, s.Start)
}

func TestScroller_UnknownMove(t *testing.T) {
	s := New(0, 10, 5, nil)
	err := s.Move("sideways")
	assert.EqualError(t, err, `unknown move "sideways"`)
	assert.ErrorIs(t, err, ErrUnknownMove)
}

func TestScroller_ForceUpdate(t *testing.T) {
	calls := 0
	s := New(0, 10, 5, counting(&calls))

	s.First()
	assert.Zero(t, calls)

	s.ForceUpdate()
	s.First()
	assert.Equal(t, 1, calls)
}
