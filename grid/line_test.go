package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	l, err := ParseLine("0,0 -> 2,3")
	require.NoError(t, err)
	assert.Equal(t, Line{Start: Pt(0, 0), End: Pt(2, 3)}, l)

	_, err = ParseLine("0,0 2,3")
	assert.ErrorIs(t, err, ErrBadLine)
	_, err = ParseLine("0,a -> 2,3")
	assert.ErrorIs(t, err, ErrBadPoint)
}

func TestLinePoints(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want []Point
	}{
		{"vertical", Line{Pt(0, 0), Pt(0, 2)}, []Point{{0, 0}, {0, 1}, {0, 2}}},
		{"horizontal reversed", Line{Pt(3, 4), Pt(1, 4)}, []Point{{3, 4}, {2, 4}, {1, 4}}},
		{"diagonal", Line{Pt(8, 0), Pt(6, 2)}, []Point{{8, 0}, {7, 1}, {6, 2}}},
		{"single point", Line{Pt(5, 5), Pt(5, 5)}, []Point{{5, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.line.Points()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Points() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinePoints_UnsupportedSlope(t *testing.T) {
	_, err := Line{Pt(0, 0), Pt(2, 3)}.Points()
	assert.ErrorIs(t, err, ErrUnsupportedSlope)
}

func TestLineClassification(t *testing.T) {
	assert.True(t, Line{Pt(0, 9), Pt(5, 9)}.IsAxisAligned())
	assert.False(t, Line{Pt(0, 9), Pt(5, 9)}.IsDiagonal())
	assert.True(t, Line{Pt(8, 0), Pt(0, 8)}.IsDiagonal())
	assert.False(t, Line{Pt(8, 0), Pt(0, 8)}.IsAxisAligned())
}

func TestParsePath(t *testing.T) {
	lines, err := ParsePath("498,4 -> 498,6 -> 496,6")
	require.NoError(t, err)
	want := []Line{
		{Pt(498, 4), Pt(498, 6)},
		{Pt(498, 6), Pt(496, 6)},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("ParsePath mismatch (-want +got):\n%s", diff)
	}
}
