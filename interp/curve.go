package interp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is a piecewise cubic Hermite curve through nodes X with derivatives D1.
// A closed curve has an extra element from the last node back to the first.
type Curve struct {
	X      []r3.Vec
	D1     []r3.Vec
	Closed bool

	lengths []float64 // per element arc length
	cum     []float64 // cum[e] = arc length before element e, cum[len] = total
}

// NewCurve creates a curve and measures its elements.
func NewCurve(x, d1 []r3.Vec, closed bool) (*Curve, error) {
	if len(d1) != len(x) {
		return nil, &SizeError{Op: "NewCurve", Values: len(x), Derivatives: len(d1)}
	}
	if len(x) < 2 {
		return nil, &SizeError{Op: "NewCurve: too few points", Values: len(x), Derivatives: len(d1)}
	}
	c := &Curve{X: x, D1: d1, Closed: closed}
	ne := c.Elements()
	c.lengths = make([]float64, ne)
	c.cum = make([]float64, ne+1)
	for e := 0; e < ne; e++ {
		a, da, b, db := c.element(e)
		c.lengths[e] = CubicHermiteArcLength(a, da, b, db)
		c.cum[e+1] = c.cum[e] + c.lengths[e]
	}
	return c, nil
}

// Elements returns the number of Hermite elements.
func (c *Curve) Elements() int {
	if c.Closed {
		return len(c.X)
	}
	return len(c.X) - 1
}

func (c *Curve) element(e int) (v1, d1, v2, d2 r3.Vec) {
	n := (e + 1) % len(c.X)
	return c.X[e], c.D1[e], c.X[n], c.D1[n]
}

// Length is the total arc length.
func (c *Curve) Length() float64 { return c.cum[len(c.cum)-1] }

// ElementLength is the arc length of element e.
func (c *Curve) ElementLength(e int) float64 { return c.lengths[e] }

// Evaluate returns the point and xi derivative on element e at xi.
func (c *Curve) Evaluate(e int, xi float64) (x, d r3.Vec) {
	v1, d1, v2, d2 := c.element(e)
	return CubicHermiteVec(v1, d1, v2, d2, xi), CubicHermiteDerivativeVec(v1, d1, v2, d2, xi)
}

// ArcPosition returns the arc length from the start of the curve to (e, xi).
func (c *Curve) ArcPosition(e int, xi float64) float64 {
	v1, d1, v2, d2 := c.element(e)
	return c.cum[e] + CubicHermiteArcLengthTo(v1, d1, v2, d2, xi)
}

// Locate finds the element and xi at arc length s from the start, clamped to the curve.
func (c *Curve) Locate(s float64) (e int, xi float64) {
	ne := c.Elements()
	if s <= 0 {
		return 0, 0
	}
	if s >= c.Length() {
		return ne - 1, 1
	}
	for e = 0; e < ne-1 && s > c.cum[e+1]; e++ {
	}
	target := s - c.cum[e]
	length := c.lengths[e]
	if length == 0 {
		return e, 0
	}
	v1, d1, v2, d2 := c.element(e)
	lo, hi := 0.0, 1.0
	xi = target / length
	for iter := 0; iter < 20; iter++ {
		f := CubicHermiteArcLengthTo(v1, d1, v2, d2, xi) - target
		if math.Abs(f) <= 1e-12*length {
			break
		}
		if f > 0 {
			hi = xi
		} else {
			lo = xi
		}
		next := 0.5 * (lo + hi)
		if speed := r3.Norm(CubicHermiteDerivativeVec(v1, d1, v2, d2, xi)); speed > 0 {
			if newton := xi - f/speed; newton > lo && newton < hi {
				next = newton
			}
		}
		xi = next
	}
	return e, xi
}

// Nearest returns the position on elements first..last (inclusive) closest to p.
func (c *Curve) Nearest(p r3.Vec, first, last int) (e int, xi float64) {
	const coarse = 16
	best := math.Inf(1)
	for ee := first; ee <= last; ee++ {
		v1, d1, v2, d2 := c.element(ee)
		for k := 0; k <= coarse; k++ {
			t := float64(k) / coarse
			if d := r3.Norm2(r3.Sub(CubicHermiteVec(v1, d1, v2, d2, t), p)); d < best {
				best, e, xi = d, ee, t
			}
		}
	}
	v1, d1, v2, d2 := c.element(e)
	dist := func(t float64) float64 {
		return r3.Norm2(r3.Sub(CubicHermiteVec(v1, d1, v2, d2, t), p))
	}
	// golden section refinement around the best coarse sample
	lo := math.Max(0, xi-1.0/coarse)
	hi := math.Min(1, xi+1.0/coarse)
	const invPhi = 0.6180339887498949
	a := hi - invPhi*(hi-lo)
	b := lo + invPhi*(hi-lo)
	fa, fb := dist(a), dist(b)
	for iter := 0; iter < 60 && hi-lo > 1e-14; iter++ {
		if fa < fb {
			hi, b, fb = b, a, fa
			a = hi - invPhi*(hi-lo)
			fa = dist(a)
		} else {
			lo, a, fa = a, b, fb
			b = lo + invPhi*(hi-lo)
			fb = dist(b)
		}
	}
	t := 0.5 * (lo + hi)
	if dist(t) < best {
		xi = t
	}
	return e, xi
}
