package colon

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/geometry"
	"github.com/msan126/scaffoldmaker/interp"
	"github.com/msan126/scaffoldmaker/tubemesh"
)

// SegmentAxis is the local axis the rings of a segment are stacked along.
var SegmentAxis = r3.Vec{Z: 1}

// Segment generates the inner surface of a colon segment without tenia coli.
// It implements tubemesh.ProfileProvider.
type Segment struct {
	ElementsAroundMZ    int
	ElementsAroundNonMZ int
	ElementsAlong       int
	Length              float64
	WallThickness       float64

	SampleResolution int             // 0 means SampleResolution
	Sampler          HaustrumSampler // nil means CircularHaustrum
	Logger           *zap.Logger     // nil means no logging
}

var _ tubemesh.ProfileProvider = (*Segment)(nil)

// Field is the inner surface of a segment together with its per ring measurements.
type Field struct {
	Zones Zones
	Rings []Ring
	Arcs  []ArcLengthMap

	X  []r3.Vec // ring-major
	D1 []r3.Vec // around
	D2 []r3.Vec // along

	Radius []float64 // per ring
	Width  []float64 // per ring
}

// Centroids returns the centroid of every ring.
func (f *Field) Centroids() ([]r3.Vec, error) {
	out := make([]r3.Vec, len(f.Rings))
	for i, r := range f.Rings {
		c, _, err := geometry.SectionCentroid(r.X, r.D1)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// InnerPoints implements tubemesh.ProfileProvider.
func (s *Segment) InnerPoints(start, end tubemesh.Boundary) (*tubemesh.InnerProfile, error) {
	f, err := s.Field(start, end)
	if err != nil {
		return nil, err
	}
	prof := &tubemesh.InnerProfile{
		AnnotationGroups: f.Zones.Groups(),
		AnnotationArray:  f.Zones.Labels,
		TransitElements:  f.Zones.Transit,
		X:                f.X,
		D1:               f.D1,
		D2:               f.D2,
		SegmentAxis:      SegmentAxis,
		Radius:           f.Radius,
		Width:            f.Width,
	}
	for _, a := range f.Arcs {
		prof.U = append(prof.U, a.U)
		prof.LengthAround = append(prof.LengthAround, a.Total)
	}
	return prof, nil
}

func (s *Segment) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Field builds the rings of the segment from the radius and mesenteric zone width at
// both ends, then derives the along derivatives and the outer arc lengths.
func (s *Segment) Field(start, end tubemesh.Boundary) (*Field, error) {
	if s.ElementsAlong < 1 {
		return nil, geometryError("Field", "elements along %d must be at least 1", s.ElementsAlong)
	}
	if err := checkAround("Field", s.ElementsAroundMZ, s.ElementsAroundNonMZ); err != nil {
		return nil, err
	}
	resolution := s.SampleResolution
	if resolution == 0 {
		resolution = SampleResolution
	}
	log := s.logger()
	zones := NewZones(s.ElementsAroundMZ, s.ElementsAroundNonMZ)
	around := zones.Around()
	planes := s.ElementsAlong + 1
	f := &Field{
		Zones:  zones,
		Rings:  make([]Ring, 0, planes),
		Arcs:   make([]ArcLengthMap, 0, planes),
		X:      make([]r3.Vec, 0, planes*around),
		D1:     make([]r3.Vec, 0, planes*around),
		Radius: make([]float64, planes),
		Width:  make([]float64, planes),
	}

	for n2 := 0; n2 < planes; n2++ {
		xi := float64(n2) / float64(s.ElementsAlong)
		radius := interp.CubicHermite(start.Radius, start.RadiusDerivative, end.Radius, end.RadiusDerivative, xi)
		width := interp.CubicHermite(start.Width, start.WidthDerivative, end.Width, end.WidthDerivative, xi)
		if !(radius > 0) {
			return nil, geometryError("Field", "radius %g at plane %d must be positive", radius, n2)
		}
		// interpolated widths can leave the arcsine domain when derivatives are steep
		if w := clamp(width, 0, 2*radius); w != width {
			log.Debug("clamped mesenteric zone width",
				zap.Int("plane", n2), zap.Float64("width", width), zap.Float64("clamped", w), zap.Float64("radius", radius))
			width = w
		}
		f.Radius[n2] = radius
		f.Width[n2] = width

		ring, err := CrossSection(s.ElementsAroundMZ, s.ElementsAroundNonMZ, width, radius, resolution, s.Sampler)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", n2, err)
		}
		z := s.Length * xi
		for i := range ring.X {
			ring.X[i].Z = z
		}
		arc, err := OuterLength(ring.X, ring.D1, SegmentAxis, s.WallThickness, zones.Transit)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", n2, err)
		}
		f.Rings = append(f.Rings, ring)
		f.Arcs = append(f.Arcs, arc)
		f.X = append(f.X, ring.X...)
		f.D1 = append(f.D1, ring.D1...)
	}

	d2, err := alongDerivatives(f.X, around, planes)
	if err != nil {
		return nil, err
	}
	f.D2 = d2
	log.Debug("built colon segment field",
		zap.Int("rings", planes), zap.Int("around", around), zap.Float64("length", s.Length))
	return f, nil
}

// alongDerivatives smooths the along derivatives of every angular slot separately
// and returns them in the ring-major layout of x.
func alongDerivatives(x []r3.Vec, around, planes int) ([]r3.Vec, error) {
	d2 := make([]r3.Vec, len(x))
	line := make([]r3.Vec, planes)
	raw := make([]r3.Vec, planes)
	for n1 := 0; n1 < around; n1++ {
		for n2 := 0; n2 < planes; n2++ {
			n := n2*around + n1
			line[n2] = x[n]
			if n2 < planes-1 {
				raw[n2] = r3.Sub(x[n+around], x[n])
			} else {
				raw[n2] = r3.Sub(x[n], x[n-around])
			}
		}
		smoothed, err := interp.SmoothCubicHermiteDerivativesLine(line, raw, nil)
		if err != nil {
			return nil, fmt.Errorf("colon: along derivatives at slot %d: %w", n1, err)
		}
		for n2, d := range smoothed {
			d2[n2*around+n1] = d
		}
	}
	return d2, nil
}
