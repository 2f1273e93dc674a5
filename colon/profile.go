package colon

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/geometry"
)

// SampleResolution is the default number of points on the reference circle a
// haustrum is sampled from.
const SampleResolution = 20

// Ring is a closed planar loop of points and around derivatives.
type Ring struct {
	X  []r3.Vec
	D1 []r3.Vec
}

// Len is the number of points in the ring.
func (r Ring) Len() int { return len(r.X) }

// Mirror completes a half profile running from the positive x axis to the negative
// x axis into a full ring by reflecting it in the x axis. The two end points lie on
// the axis and are not duplicated.
func Mirror(half Ring) Ring {
	n := len(half.X)
	if n < 2 {
		return half
	}
	out := Ring{
		X:  make([]r3.Vec, n, 2*n-2),
		D1: make([]r3.Vec, n, 2*n-2),
	}
	copy(out.X, half.X)
	copy(out.D1, half.D1)
	for i := n - 2; i > 0; i-- {
		x, d := half.X[i], half.D1[i]
		out.X = append(out.X, r3.Vec{X: x.X, Y: -x.Y, Z: x.Z})
		out.D1 = append(out.D1, r3.Vec{X: -d.X, Y: d.Y, Z: d.Z})
	}
	return out
}

// CrossSection builds the inner ring of a colon segment of the given radius with a
// mesenteric zone of chord width mzWidth centred on the positive x axis. The
// mesenteric zone is split into aroundMZ equal angle elements; the rest of the circle
// is sampled into aroundNonMZ elements by sampler. If sampler is nil the
// CircularHaustrum is used.
func CrossSection(aroundMZ, aroundNonMZ int, mzWidth, radius float64, sampleResolution int, sampler HaustrumSampler) (Ring, error) {
	const op = "CrossSection"
	if err := checkAround(op, aroundMZ, aroundNonMZ); err != nil {
		return Ring{}, err
	}
	switch {
	case sampleResolution < 4 || sampleResolution%2 != 0:
		return Ring{}, geometryError(op, "sample resolution %d must be even and at least 4", sampleResolution)
	case !(radius > 0):
		return Ring{}, geometryError(op, "radius %g must be positive", radius)
	case mzWidth < 0 || mzWidth > 2*radius:
		return Ring{}, geometryError(op, "mesenteric zone width %g outside [0, %g] for radius %g", mzWidth, 2*radius, radius)
	}
	if sampler == nil {
		sampler = CircularHaustrum{}
	}

	refX, refD1 := geometry.CirclePoints(r3.Vec{}, r3.Vec{X: radius}, r3.Vec{Y: radius}, sampleResolution, 0)

	radiansAroundMZ := 2 * math.Asin(mzWidth/(2*radius))
	radiansPerElementMZ := radiansAroundMZ / float64(aroundMZ)
	halfMZ := aroundMZ/2 + 1
	half := Ring{
		X:  make([]r3.Vec, 0, (aroundMZ+aroundNonMZ)/2+1),
		D1: make([]r3.Vec, 0, (aroundMZ+aroundNonMZ)/2+1),
	}
	for n1 := 0; n1 < halfMZ; n1++ {
		a := radiansPerElementMZ * float64(n1)
		c, s := math.Cos(a), math.Sin(a)
		half.X = append(half.X, r3.Vec{X: radius * c, Y: radius * s})
		half.D1 = append(half.D1, r3.Vec{X: -radius * s * radiansPerElementMZ, Y: radius * c * radiansPerElementMZ})
	}

	h, err := sampler.SampleHaustrum(refX, refD1, half.X[halfMZ-1], half.D1[halfMZ-1], math.Pi*radius, 0.5*mzWidth, aroundNonMZ)
	if err != nil {
		return Ring{}, err
	}
	if len(h.X) != aroundNonMZ/2+1 || len(h.D1) != len(h.X) {
		return Ring{}, geometryError(op, "haustrum sampler returned %d points, want %d", len(h.X), aroundNonMZ/2+1)
	}
	half.X = append(half.X, h.X[1:]...)
	half.D1 = append(half.D1, h.D1[1:]...)
	return Mirror(half), nil
}

// checkAround validates the element counts around a ring.
func checkAround(op string, aroundMZ, aroundNonMZ int) error {
	switch {
	case aroundMZ < 2 || aroundMZ%2 != 0:
		return geometryError(op, "elements around mesenteric zone %d must be even and at least 2", aroundMZ)
	case aroundNonMZ < 4 || aroundNonMZ%2 != 0:
		return geometryError(op, "elements around non-mesenteric zone %d must be even and at least 4", aroundNonMZ)
	}
	return nil
}
