package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	assert.Equal(t, Pt(3, 3), Pt(1, 2).Add(Pt(2, 1)))
	assert.NotEqual(t, Pt(1, 2), Pt(1, 2).Add(Pt(2, 1)))
	assert.Equal(t, Pt(-1, 1), Pt(1, 2).Sub(Pt(2, 1)))
	assert.Equal(t, Pt(-1, 1), Pt(-7, 3).Sign())
	assert.Equal(t, 7, Pt(0, 0).Manhattan(Pt(-3, 4)))
	assert.Equal(t, 4, Pt(0, 0).Chebyshev(Pt(-3, 4)))
	assert.Equal(t, "1,-2", Pt(1, -2).String())
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 1,2 ")
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 2), p)

	for _, bad := range []string{"", "1", "1;2", "a,2"} {
		_, err := ParsePoint(bad)
		assert.ErrorIs(t, err, ErrBadPoint, bad)
	}
}

func TestParsePoint3(t *testing.T) {
	p, err := ParsePoint3("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, Point3{1, 2, 3}, p)

	p, err = ParsePoint3("1,2")
	require.NoError(t, err)
	assert.Equal(t, Point3{1, 2, 0}, p)

	_, err = ParsePoint3("1,2,3,4")
	assert.ErrorIs(t, err, ErrBadPoint)
}

func TestNeighbors6(t *testing.T) {
	n := Point3{}.Neighbors6()
	assert.Len(t, n, 6)
	assert.Contains(t, n, Point3{0, 0, -1})
	assert.Contains(t, n, Point3{1, 0, 0})
}

func TestSignAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, int64(5), Abs(int64(5)))
	assert.Equal(t, -1, Sign(-9))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(3))
}
