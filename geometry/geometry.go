// Package geometry samples simple shapes and measures planar cross-sections.
package geometry

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/interp"
)

// sectionSubdivisions is the number of straight pieces each Hermite element of a
// section is split into before measuring it.
const sectionSubdivisions = 16

// CirclePoints returns count points and derivatives equally spaced in angle on the
// ellipse centre + cos(a)*axis1 + sin(a)*axis2, starting at startRadians.
// Derivatives are scaled to one element of angle.
func CirclePoints(centre, axis1, axis2 r3.Vec, count int, startRadians float64) (x, d1 []r3.Vec) {
	x = make([]r3.Vec, count)
	d1 = make([]r3.Vec, count)
	da := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		a := startRadians + da*float64(i)
		c, s := math.Cos(a), math.Sin(a)
		x[i] = r3.Add(centre, r3.Add(r3.Scale(c, axis1), r3.Scale(s, axis2)))
		d1[i] = r3.Scale(da, r3.Add(r3.Scale(-s, axis1), r3.Scale(c, axis2)))
	}
	return x, d1
}

// SectionCentroid returns the centroid and enclosed area of the closed Hermite loop
// x, d1 projected on the XY plane. The centroid Z is the mean Z of the nodes.
func SectionCentroid(x, d1 []r3.Vec) (r3.Vec, float64, error) {
	if len(x) < 3 {
		return r3.Vec{}, 0, errors.New("geometry: section needs at least 3 points")
	}
	if len(d1) != len(x) {
		return r3.Vec{}, 0, &interp.SizeError{Op: "SectionCentroid", Values: len(x), Derivatives: len(d1)}
	}
	n := len(x)
	ring := make(orb.Ring, 0, n*sectionSubdivisions+1)
	var z float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		for k := 0; k < sectionSubdivisions; k++ {
			p := interp.CubicHermiteVec(x[i], d1[i], x[j], d1[j], float64(k)/sectionSubdivisions)
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		z += x[i].Z
	}
	ring = append(ring, ring[0])
	c, area := planar.CentroidArea(orb.Polygon{ring})
	return r3.Vec{X: c[0], Y: c[1], Z: z / float64(n)}, math.Abs(area), nil
}
