package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New(1, 5, uint8(0))
	assert.Equal(t, 1, g.Width)
	assert.Equal(t, 5, g.Height)
	assert.Equal(t, make([]uint8, 5), g.Data())
}

// TestGetSet checks row-major addressing on a 2×2 grid:
//
//	1 2
//	3 4
func TestGetSet(t *testing.T) {
	g, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, 1, g.At(Pt(0, 0)))
	assert.Equal(t, 2, g.At(Pt(1, 0)))
	assert.Equal(t, 3, g.At(Pt(0, 1)))
	assert.Equal(t, 4, g.At(Pt(1, 1)))

	g.Set(Pt(1, 0), 9)
	assert.Equal(t, []int{1, 9, 3, 4}, g.Data())

	_, ok := g.Get(Pt(2, 0))
	assert.False(t, ok)
	assert.Panics(t, func() { g.At(Pt(-1, 0)) })
}

func TestFromRows_Invalid(t *testing.T) {
	if _, err := FromRows[int](nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := FromRows([][]int{{1}, {}}); !errors.Is(err, ErrNonRectangular) {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}

func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]int{{1, 2}}
	g, err := FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 7
	assert.Equal(t, 1, g.At(Pt(0, 0)))
}

func TestParseDigits(t *testing.T) {
	g, err := ParseDigits("123\n456\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 6, g.At(Pt(2, 1)))
	assert.Equal(t, "123\n456\n", g.String())

	_, err = ParseDigits("12\n3x")
	assert.Error(t, err)
	_, err = ParseDigits("12\n3")
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestNeighbors_Corners(t *testing.T) {
	g := New(3, 3, 0)

	got4 := g.Neighbors(Pt(0, 0), Conn4)
	if diff := cmp.Diff([]Point{{1, 0}, {0, 1}}, got4); diff != "" {
		t.Errorf("Conn4 corner neighbors mismatch (-want +got):\n%s", diff)
	}

	got8 := g.Neighbors(Pt(1, 1), Conn8)
	assert.Len(t, got8, 8)
	assert.NotContains(t, got8, Pt(1, 1))

	assert.Len(t, g.Neighbors(Pt(2, 2), Conn8), 3)
}

func TestCoordinateIndexRoundTrip(t *testing.T) {
	g := New(4, 3, false)
	for _, p := range g.Points() {
		assert.Equal(t, p, g.Coordinate(g.Index(p)))
	}
}

func TestCountAndClone(t *testing.T) {
	g := New(2, 2, false)
	c := g.Clone()
	c.Set(Pt(1, 1), true)
	assert.Equal(t, 0, g.Count(func(b bool) bool { return b }))
	assert.Equal(t, 1, c.Count(func(b bool) bool { return b }))
}
