package colon

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/interp"
)

// ArcLengthMap is the normalised position of every node of a ring along its outer
// surface, the wall thickness offset of the inner ring.
type ArcLengthMap struct {
	U              []float64 // U[j] is the outer length before node j over Total; U[0] = 0
	ElementLengths []float64 // outer length of element j, from node j to node j+1
	Total          float64   // outer perimeter
}

// OuterLength measures the outer surface of the inner ring x, d1 offset outwards by
// wallThickness. Outward normals are d1 x axis. Around derivatives are scaled by
// 1 + wallThickness*curvature, where nodes bounding a transition element take the
// curvature of the neighbouring zone's element.
func OuterLength(x, d1 []r3.Vec, axis r3.Vec, wallThickness float64, transit []bool) (ArcLengthMap, error) {
	kappa, err := interp.LoopCurvatures(x, d1, transit)
	if err != nil {
		return ArcLengthMap{}, err
	}
	n := len(x)
	xOuter := make([]r3.Vec, n)
	d1Outer := make([]r3.Vec, n)
	for i := range x {
		norm := interp.SetMagnitude(r3.Cross(d1[i], axis), 1)
		xOuter[i] = r3.Add(x[i], r3.Scale(wallThickness, norm))
		d1Outer[i] = r3.Scale(1+wallThickness*kappa[i], d1[i])
	}

	m := ArcLengthMap{
		U:              make([]float64, n),
		ElementLengths: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.ElementLengths[i] = interp.CubicHermiteArcLength(xOuter[i], d1Outer[i], xOuter[j], d1Outer[j])
		m.U[i] = m.Total
		m.Total += m.ElementLengths[i]
	}
	if m.Total > 0 {
		for i := range m.U {
			m.U[i] /= m.Total
		}
	}
	return m, nil
}
