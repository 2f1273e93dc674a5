// Package scaffoldmaker generates a hexahedral mesh of a colon segment with a simple
// mesenteric zone running along one side and no tenia coli.
//
// The segment lies along the x axis from the origin. Its inner radius and
// mesenteric zone width are interpolated between the values at both ends.
package scaffoldmaker

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/annotation"
	"github.com/msan126/scaffoldmaker/colon"
	"github.com/msan126/scaffoldmaker/mesh"
	"github.com/msan126/scaffoldmaker/tubemesh"
)

// Name is the scaffold type name.
const Name = "3D Colon Segment Simple Mesentery 1"

// ErrNoRefiner is returned when refinement is requested from a ColonSegment
// without a Refiner.
var ErrNoRefiner = errors.New("scaffoldmaker: refinement requested but no refiner configured")

// AssembleFunc builds a tube mesh from inner profiles. tubemesh.Generate is one.
type AssembleFunc func(region tubemesh.Region, p tubemesh.Params, provider tubemesh.ProfileProvider) (*tubemesh.Result, error)

// Refiner subdivides every element of a base mesh into the target region and returns
// the annotation groups of the refined mesh.
type Refiner interface {
	Refine(base *mesh.Region, groups []*annotation.Group, target tubemesh.Region, around, along, throughWall int) ([]*annotation.Group, error)
}

// ColonSegment generates colon segment meshes. The zero value uses tubemesh.Generate
// and does not log.
type ColonSegment struct {
	Logger    *zap.Logger
	Assembler AssembleFunc
	Refiner   Refiner
}

func (c *ColonSegment) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *ColonSegment) assembler() AssembleFunc {
	if c == nil || c.Assembler == nil {
		return tubemesh.Generate
	}
	return c.Assembler
}

// prepare returns a checked copy of opt. If opt is nil, defaults are used.
func (c *ColonSegment) prepare(opt *Options) Options {
	o := Defaults
	if opt != nil {
		o = *opt
	}
	log := c.logger()
	for _, fix := range o.Check() {
		log.Debug("corrected option", zap.String("key", fix.Key), zap.Float64("old", fix.Old), zap.Float64("new", fix.New))
	}
	return o
}

// Provider returns the inner profile provider for checked options.
func (o *Options) Provider(log *zap.Logger) *colon.Segment {
	return &colon.Segment{
		ElementsAroundMZ:    o.ElementsAroundMZ,
		ElementsAroundNonMZ: o.ElementsAroundNonMZ,
		ElementsAlong:       o.ElementsAlong,
		Length:              o.SegmentLength,
		WallThickness:       o.WallThickness,
		Logger:              log,
	}
}

// TubeParams returns the assembler parameters for checked options: a single straight
// segment along the x axis.
func (o *Options) TubeParams() tubemesh.Params {
	l := o.SegmentLength
	return tubemesh.Params{
		ElementsAround:       o.ElementsAroundMZ + o.ElementsAroundNonMZ,
		ElementsAlongSegment: o.ElementsAlong,
		ElementsThroughWall:  o.ElementsThroughWall,
		SegmentCount:         1,
		Path: tubemesh.CentralPath{
			X:   []r3.Vec{{}, {X: l}},
			D1:  []r3.Vec{{X: l}, {X: l}},
			D2:  []r3.Vec{{Y: 1}, {Y: 1}},
			D12: []r3.Vec{{}, {}},
		},
		Radius:                     []float64{o.StartRadius, o.EndRadius},
		RadiusDerivative:           []float64{o.StartRadiusDerivative, o.EndRadiusDerivative},
		Width:                      []float64{o.StartMZWidth, o.EndMZWidth},
		WidthDerivative:            []float64{o.StartMZWidthDerivative, o.EndMZWidthDerivative},
		WallThickness:              o.WallThickness,
		SegmentLength:              l,
		UseCrossDerivatives:        o.UseCrossDerivatives,
		UseCubicHermiteThroughWall: !o.UseLinearThroughWall,
	}
}

// GenerateBaseMesh builds the unrefined mesh into region. The options are checked on
// a copy; opt itself is not modified. If opt is nil, defaults are used.
func (c *ColonSegment) GenerateBaseMesh(region tubemesh.Region, opt *Options) (*tubemesh.Result, error) {
	o := c.prepare(opt)
	log := c.logger()
	res, err := c.assembler()(region, o.TubeParams(), o.Provider(log))
	if err != nil {
		return nil, fmt.Errorf("scaffoldmaker: %w", err)
	}
	log.Debug("generated base mesh",
		zap.Int("nodes", res.NextNodeIdentifier-1), zap.Int("elements", res.NextElementIdentifier-1))
	return res, nil
}

// GenerateMesh builds the base mesh, or a refined one if opt.Refine is set, and
// returns its annotation groups.
func (c *ColonSegment) GenerateMesh(region tubemesh.Region, opt *Options) ([]*annotation.Group, error) {
	o := c.prepare(opt)
	if !o.Refine {
		res, err := c.GenerateBaseMesh(region, &o)
		if err != nil {
			return nil, err
		}
		return res.AnnotationGroups, nil
	}
	if c == nil || c.Refiner == nil {
		return nil, ErrNoRefiner
	}
	base := mesh.NewRegion()
	res, err := c.GenerateBaseMesh(base, &o)
	if err != nil {
		return nil, err
	}
	groups, err := c.Refiner.Refine(base, res.AnnotationGroups, region,
		o.RefineElementsAround, o.RefineElementsAlong, o.RefineElementsThroughWall)
	if err != nil {
		return nil, fmt.Errorf("scaffoldmaker: refine: %w", err)
	}
	return groups, nil
}
