package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func assertVecInDelta(t *testing.T, want, got r3.Vec, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, delta, msgAndArgs...)
}

func TestCubicHermiteEndpoints(t *testing.T) {
	cases := []struct {
		p0, d0, p1, d1 float64
	}{
		{0, 0, 1, 0},
		{0.094, 0.3, 0.12, -1.2},
		{-5, 10, 7, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.p0, CubicHermite(c.p0, c.d0, c.p1, c.d1, 0))
		assert.InDelta(t, c.p1, CubicHermite(c.p0, c.d0, c.p1, c.d1, 1), 1e-15)
		assert.InDelta(t, c.d0, CubicHermiteDerivative(c.p0, c.d0, c.p1, c.d1, 0), 1e-15)
		assert.InDelta(t, c.d1, CubicHermiteDerivative(c.p0, c.d0, c.p1, c.d1, 1), 1e-15)
	}
	// midpoint is the mean plus an eighth of the derivative difference
	assert.InDelta(t, 0.5+(2.0-1.0)/8, CubicHermite(0, 2, 1, 1, 0.5), 1e-15)
}

func TestCubicHermiteVec(t *testing.T) {
	p0 := r3.Vec{X: 1, Y: 2, Z: 3}
	d0 := r3.Vec{X: 0, Y: 1, Z: 0}
	p1 := r3.Vec{X: -1, Y: 0, Z: 5}
	d1 := r3.Vec{X: 2, Y: 0, Z: 1}
	assertVecInDelta(t, p0, CubicHermiteVec(p0, d0, p1, d1, 0), 1e-15)
	assertVecInDelta(t, p1, CubicHermiteVec(p0, d0, p1, d1, 1), 1e-15)

	v := CubicHermiteVec(p0, d0, p1, d1, 0.3)
	assert.InDelta(t, CubicHermite(p0.Y, d0.Y, p1.Y, d1.Y, 0.3), v.Y, 1e-15)

	c, err := CubicHermiteComponents([]float64{p0.X, p0.Y, p0.Z}, []float64{d0.X, d0.Y, d0.Z},
		[]float64{p1.X, p1.Y, p1.Z}, []float64{d1.X, d1.Y, d1.Z}, 0.3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{v.X, v.Y, v.Z}, c, 1e-15)
}

func TestCubicHermiteComponentsMismatch(t *testing.T) {
	_, err := CubicHermiteComponents([]float64{1}, []float64{1, 2}, []float64{1}, []float64{1}, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestQuadraticEndDerivatives(t *testing.T) {
	v1 := r3.Vec{}
	v2 := r3.Vec{X: 1}
	d := r3.Vec{X: 1}
	assertVecInDelta(t, d, LagrangeHermiteDerivative(v1, v2, d, 0), 1e-15)
	assertVecInDelta(t, d, HermiteLagrangeDerivative(v1, d, v2, 1), 1e-15)
	assertVecInDelta(t, r3.Vec{X: 2}, LagrangeHermiteDerivative(v1, v2, r3.Vec{}, 0), 1e-15)
}

func TestArcLength(t *testing.T) {
	v1 := r3.Vec{}
	v2 := r3.Vec{X: 3, Y: 4}
	d := r3.Sub(v2, v1)
	assert.InDelta(t, 5, CubicHermiteArcLength(v1, d, v2, d), 1e-12)
	assert.InDelta(t, 2.5, CubicHermiteArcLengthTo(v1, d, v2, d, 0.5), 1e-12)
	assert.Equal(t, 0.0, CubicHermiteArcLengthTo(v1, d, v2, d, 0))
}

func circle(n int, radius float64) (x, d1 []r3.Vec) {
	dt := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := dt * float64(i)
		x = append(x, r3.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
		d1 = append(d1, r3.Vec{X: -radius * math.Sin(a) * dt, Y: radius * math.Cos(a) * dt})
	}
	return
}

func TestCurvature(t *testing.T) {
	v1 := r3.Vec{}
	v2 := r3.Vec{Z: 2}
	d := r3.Vec{Z: 2}
	assert.Equal(t, 0.0, CubicHermiteCurvature(v1, d, v2, d, 0.5))
	assert.Equal(t, 0.0, CubicHermiteCurvature(v1, r3.Vec{}, v1, r3.Vec{}, 0.5))

	x, d1 := circle(40, 0.5)
	k, err := LoopCurvatures(x, d1, nil)
	require.NoError(t, err)
	require.Len(t, k, 40)
	for i := range k {
		assert.InEpsilon(t, 2.0, k[i], 0.01, "node %d", i)
	}

	_, err = LoopCurvatures(x, d1[1:], nil)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = LoopCurvatures(x, d1, make([]bool, 3))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestLoopCurvaturesTransition(t *testing.T) {
	x, d1 := circle(8, 1)
	transit := make([]bool, 8)
	transit[2] = true
	k, err := LoopCurvatures(x, d1, transit)
	require.NoError(t, err)
	// node 2 starts the transition element, node 3 ends it
	assert.InDelta(t, CubicHermiteCurvature(x[1], d1[1], x[2], d1[2], 1), k[2], 1e-15)
	assert.InDelta(t, CubicHermiteCurvature(x[3], d1[3], x[4], d1[4], 0), k[3], 1e-15)
}

func TestSmoothStraightLine(t *testing.T) {
	var x, d []r3.Vec
	for i := 0; i < 5; i++ {
		x = append(x, r3.Vec{Z: 0.375 * float64(i)})
		d = append(d, r3.Vec{Z: 0.375})
	}
	sd, err := SmoothCubicHermiteDerivativesLine(x, d, nil)
	require.NoError(t, err)
	require.Len(t, sd, 5)
	for i := range sd {
		assertVecInDelta(t, r3.Vec{Z: 0.375}, sd[i], 1e-12, "node %d", i)
	}
}

func TestSmoothSingleElement(t *testing.T) {
	x := []r3.Vec{{X: 1}, {X: 1, Y: 2}}
	d := []r3.Vec{{X: 5}, {Z: 1}}
	sd, err := SmoothCubicHermiteDerivativesLine(x, d, nil)
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{{Y: 2}, {Y: 2}}, sd)
}

func TestSmoothUnevenLine(t *testing.T) {
	x := []r3.Vec{{}, {X: 1}, {X: 3}, {X: 6}}
	d := []r3.Vec{{X: 1}, {X: 2}, {X: 3}, {X: 3}}
	sd, err := SmoothCubicHermiteDerivativesLine(x, d, nil)
	require.NoError(t, err)
	for i := range sd {
		assert.InDelta(t, 0, sd[i].Y, 1e-15)
		assert.Greater(t, sd[i].X, 0.0)
	}
	// interior magnitudes are the mean of the adjacent element lengths
	for i := 1; i < 3; i++ {
		lm := CubicHermiteArcLength(x[i-1], sd[i-1], x[i], sd[i])
		lp := CubicHermiteArcLength(x[i], sd[i], x[i+1], sd[i+1])
		assert.InEpsilon(t, 0.5*(lm+lp), r3.Norm(sd[i]), 1e-4)
	}
	assert.Less(t, sd[0].X, sd[3].X)

	harmonic := SmoothDefaults
	harmonic.Scaling = HarmonicMean
	hd, err := SmoothCubicHermiteDerivativesLine(x, d, &harmonic)
	require.NoError(t, err)
	assert.Less(t, hd[1].X, sd[1].X)
}

func TestSmoothMismatch(t *testing.T) {
	x := []r3.Vec{{}, {X: 1}, {X: 2}}
	_, err := SmoothCubicHermiteDerivativesLine(x, x[:2], nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Values)
	assert.Equal(t, 2, se.Derivatives)

	_, err = SmoothCubicHermiteDerivativesLine(x[:1], x[:1], nil)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestCurveLocate(t *testing.T) {
	x, d1 := circle(20, 1)
	c, err := NewCurve(x, d1, true)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Elements())
	assert.InEpsilon(t, 2*math.Pi, c.Length(), 1e-3)

	for _, s := range []float64{0.1, 1.3, 3.0, 5.9} {
		e, xi := c.Locate(s)
		assert.InDelta(t, s, c.ArcPosition(e, xi), 1e-9, "s=%v", s)
	}
	e, xi := c.Locate(-1)
	assert.Equal(t, 0, e)
	assert.Equal(t, 0.0, xi)
	e, xi = c.Locate(100)
	assert.Equal(t, 19, e)
	assert.Equal(t, 1.0, xi)

	_, err = NewCurve(x, d1[:3], false)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestCurveNearest(t *testing.T) {
	x, d1 := circle(20, 1)
	c, err := NewCurve(x, d1, true)
	require.NoError(t, err)
	a := 0.4
	p := r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
	e, xi := c.Nearest(p, 0, 9)
	got, _ := c.Evaluate(e, xi)
	assertVecInDelta(t, p, got, 1e-4)
	assert.Equal(t, 1, e)
}

func BenchmarkSmooth(b *testing.B) {
	var x, d []r3.Vec
	for i := 0; i < 50; i++ {
		z := float64(i)
		x = append(x, r3.Vec{X: math.Sin(z / 10), Z: z})
		d = append(d, r3.Vec{Z: 1})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SmoothCubicHermiteDerivativesLine(x, d, nil); err != nil {
			b.Fatal(err)
		}
	}
}
