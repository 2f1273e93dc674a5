// Package tubemesh turns the inner surface profile of tube segments into a
// volumetric hexahedral mesh following a central path.
package tubemesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/annotation"
	"github.com/msan126/scaffoldmaker/mesh"
)

// ErrInvalidParams is returned for inconsistent assembler parameters.
var ErrInvalidParams = errors.New("tubemesh: invalid parameters")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

// Boundary holds the scalar profile values and their along derivatives at one end
// of a segment.
type Boundary struct {
	Radius           float64
	RadiusDerivative float64
	Width            float64 // mesenteric zone width
	WidthDerivative  float64
}

// InnerProfile is the inner surface of one segment in its local frame, where the
// segment axis is SegmentAxis and planes are stacked along it. Point arrays are
// ring-major: plane by plane, then around each plane.
type InnerProfile struct {
	AnnotationGroups []*annotation.Group
	AnnotationArray  []string // group name of each element around
	TransitElements  []bool   // element around straddles a zone boundary

	U            [][]float64 // per plane, normalised outer arc length of each node
	LengthAround []float64   // per plane, outer perimeter

	X  []r3.Vec
	D1 []r3.Vec // around
	D2 []r3.Vec // along

	SegmentAxis r3.Vec
	Radius      []float64 // per plane
	Width       []float64 // per plane
}

// ProfileProvider builds the inner profile of a segment from the boundary values at
// its start and end. Tube variants (with or without tenia coli, with or without a
// mesentery) implement it.
type ProfileProvider interface {
	InnerPoints(start, end Boundary) (*InnerProfile, error)
}

// Region receives the generated nodes and elements.
type Region interface {
	CreateNode(n mesh.Node) int
	CreateElement(e mesh.Element) int
}

// CentralPath describes the centre line of the tube: node positions X, derivatives
// along the path D1, a reference side direction D2 and its along derivative D12.
type CentralPath struct {
	X   []r3.Vec
	D1  []r3.Vec
	D2  []r3.Vec
	D12 []r3.Vec
}

// Params describes a tube of SegmentCount segments along a central path with one
// node per segment boundary. Radius and Width lists hold one value per path node.
type Params struct {
	ElementsAround       int
	ElementsAlongSegment int
	ElementsThroughWall  int
	SegmentCount         int

	Path CentralPath

	Radius           []float64
	RadiusDerivative []float64
	Width            []float64
	WidthDerivative  []float64

	WallThickness float64
	SegmentLength float64

	UseCrossDerivatives        bool
	UseCubicHermiteThroughWall bool
}

// Result is everything produced by Generate.
type Result struct {
	AnnotationGroups      []*annotation.Group
	NextNodeIdentifier    int
	NextElementIdentifier int

	// Node values in creation order: plane, then wall layer, then around.
	X  []r3.Vec
	D1 []r3.Vec
	D2 []r3.Vec
	D3 []r3.Vec

	// Per plane along the whole tube.
	U            [][]float64
	LengthAround []float64
	Centres      []r3.Vec

	// Profiles are the provider outputs, one per segment, in their local frames.
	Profiles []*InnerProfile
}

func (p *Params) validate() error {
	switch {
	case p.ElementsAround < 3:
		return invalid("elements around %d < 3", p.ElementsAround)
	case p.ElementsAlongSegment < 1:
		return invalid("elements along segment %d < 1", p.ElementsAlongSegment)
	case p.ElementsThroughWall < 1:
		return invalid("elements through wall %d < 1", p.ElementsThroughWall)
	case p.SegmentCount < 1:
		return invalid("segment count %d < 1", p.SegmentCount)
	case p.SegmentLength <= 0:
		return invalid("segment length %g <= 0", p.SegmentLength)
	case p.WallThickness < 0:
		return invalid("wall thickness %g < 0", p.WallThickness)
	}
	nodes := p.SegmentCount + 1
	lists := []struct {
		name string
		n    int
	}{
		{"path x", len(p.Path.X)},
		{"path d1", len(p.Path.D1)},
		{"path d2", len(p.Path.D2)},
		{"radius", len(p.Radius)},
		{"radius derivative", len(p.RadiusDerivative)},
		{"width", len(p.Width)},
		{"width derivative", len(p.WidthDerivative)},
	}
	for _, l := range lists {
		if l.n != nodes {
			return invalid("%s has %d values, want %d", l.name, l.n, nodes)
		}
	}
	return nil
}
