package tricolor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLattice(t *testing.T) {
	samples, err := Lattice(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, samples)

	samples, err = Lattice(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, samples)
}

func TestGridInvalidDensity(t *testing.T) {
	for _, d := range []int{-3, 0, 1, MaxDensity + 1} {
		_, err := Grid(d)
		assert.True(t, errors.Is(err, ErrInvalidDensity), "density %d: %v", d, err)
	}
}

func TestGridPointCount(t *testing.T) {
	cases := map[int]int{
		2:  2,
		3:  2,
		5:  6,
		10: 40,
		11: 40,
		50: 1064,
	}
	for density, want := range cases {
		points, err := Grid(density)
		require.NoError(t, err)
		assert.Len(t, points, want, "density %d", density)
		assert.Less(t, len(points), density*density)
	}
}

func TestGridPointsInsideTriangle(t *testing.T) {
	points, err := Grid(101)
	require.NoError(t, err)
	require.NotEmpty(t, points)

	for _, p := range points {
		assert.True(t, Contains(p.Point), "%v outside of the triangle", p.Point)
		assert.NotEqual(t, 0.5, p.X)
		for _, v := range []float64{p.Color.R, p.Color.G, p.Color.B} {
			assert.GreaterOrEqual(t, v, Tolerance)
			assert.LessOrEqual(t, v, 1-Tolerance)
		}
	}
}

func TestGridWeightsAreNotRenormalized(t *testing.T) {
	points, err := Grid(10)
	require.NoError(t, err)

	// The origin is the first lattice point and carries clipped corner weights.
	require.Equal(t, Point{0, 0}, points[0].Point)
	assert.InDelta(t, 1+Tolerance, points[0].Color.Sum(), epsilon)

	offSimplex := 0
	for _, p := range points {
		if d := p.Color.Sum() - 1; d > epsilon || d < -epsilon {
			offSimplex++
		}
	}
	assert.Greater(t, offSimplex, 0)
}

func TestGridOrder(t *testing.T) {
	points, err := Grid(10)
	require.NoError(t, err)

	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.Y == prev.Y {
			assert.Greater(t, cur.X, prev.X)
		} else {
			assert.Greater(t, cur.Y, prev.Y)
		}
	}
}

func TestGridDeterministic(t *testing.T) {
	a, err := Grid(64)
	require.NoError(t, err)
	b, err := Grid(64)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("grid mismatch (-first +second):\n%s", diff)
	}
}
