package colon

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/interp"
)

// Haustrum is one half of the non-mesenteric arc of a ring, from the junction with
// the mesenteric zone to the negative x axis.
type Haustrum struct {
	X  []r3.Vec // first point is the junction
	D1 []r3.Vec

	ArcLengthPerElement    float64 // regular non-mesenteric element
	ArcLengthPerTransition float64 // element next to the mesenteric zone
}

// HaustrumSampler samples the non-mesenteric half arc of a ring. ref is a dense closed
// reference loop starting on the positive x axis; junction and junctionD1 are the last
// mesenteric point and derivative, which the sample must continue smoothly.
// elementsAroundNonMZ counts elements around the whole ring, so half of them are
// returned.
type HaustrumSampler interface {
	SampleHaustrum(ref, refD1 []r3.Vec, junction, junctionD1 r3.Vec, halfCircumference, halfMZWidth float64, elementsAroundNonMZ int) (Haustrum, error)
}

// CircularHaustrum samples the reference loop itself, so the non-mesenteric zone keeps
// the shape of the reference. The half arc ends halfCircumference from the start of
// the reference, on its middle node. The transition element blends the junction
// element length into the regular element length.
type CircularHaustrum struct{}

// SampleHaustrum implements HaustrumSampler.
func (CircularHaustrum) SampleHaustrum(ref, refD1 []r3.Vec, junction, junctionD1 r3.Vec, halfCircumference, _ float64, elementsAroundNonMZ int) (Haustrum, error) {
	const op = "SampleHaustrum"
	n := len(ref)
	if n < 4 || n%2 != 0 {
		return Haustrum{}, geometryError(op, "reference needs an even number of points, got %d", n)
	}
	m := elementsAroundNonMZ / 2
	if m < 1 {
		return Haustrum{}, geometryError(op, "elements around non-mesenteric zone %d too small", elementsAroundNonMZ)
	}
	curve, err := interp.NewCurve(ref, refD1, true)
	if err != nil {
		return Haustrum{}, err
	}

	// elements 0..n/2-1 run from the positive to the negative x axis through y > 0
	e0, xi0 := curve.Nearest(junction, 0, n/2-1)
	s0 := curve.ArcPosition(e0, xi0)
	length := halfCircumference - s0
	a := r3.Norm(junctionD1)

	// lengthFractionStart = 1/2 with half the junction derivative added at the start
	b := (length - 0.5*a) / (float64(m) - 0.5)
	if !(b > 0) {
		return Haustrum{}, geometryError(op, "no arc left for the non-mesenteric zone: length %g, junction element %g", length, a)
	}
	transition := 0.5 * (a + b)

	h := Haustrum{
		X:                      make([]r3.Vec, m+1),
		D1:                     make([]r3.Vec, m+1),
		ArcLengthPerElement:    b,
		ArcLengthPerTransition: transition,
	}
	h.X[0], h.D1[0] = junction, junctionD1
	for k := 1; k <= m; k++ {
		s := s0 + transition + float64(k-1)*b
		mag := b
		if k == 1 && m > 1 {
			mag = 0.5 * (transition + b)
		} else if k == 1 {
			mag = transition
		}
		var e int
		var xi float64
		if k == m {
			// land exactly on the reference node on the axis
			e, xi = n/2, 0
		} else {
			e, xi = curve.Locate(s)
		}
		x, d := curve.Evaluate(e, xi)
		h.X[k] = x
		h.D1[k] = interp.SetMagnitude(d, mag)
	}
	return h, nil
}
