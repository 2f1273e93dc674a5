package scaffoldmaker

import (
	"math"
)

const (
	// MinMZWidthAngle is the smallest mesenteric zone width allowed, as an angle
	// subtended at the smaller of the two inner radii.
	MinMZWidthAngle = 10.0 * math.Pi / 180.0
	// MaxMZWidthFactor bounds the mesenteric zone width at each end to this multiple
	// of the inner radius there.
	MaxMZWidthFactor = math.Pi / 2
)

// Options is a set of colon segment parameters. Counts are elements, lengths are in
// the units of the radii.
type Options struct {
	ElementsAroundMZ    int `yaml:"elements_around_mz" mapstructure:"elements_around_mz" json:"elements_around_mz"`
	ElementsAroundNonMZ int `yaml:"elements_around_non_mz" mapstructure:"elements_around_non_mz" json:"elements_around_non_mz"`
	ElementsAlong       int `yaml:"elements_along" mapstructure:"elements_along" json:"elements_along"`
	ElementsThroughWall int `yaml:"elements_through_wall" mapstructure:"elements_through_wall" json:"elements_through_wall"`

	StartRadius           float64 `yaml:"start_radius" mapstructure:"start_radius" json:"start_radius"`
	StartRadiusDerivative float64 `yaml:"start_radius_derivative" mapstructure:"start_radius_derivative" json:"start_radius_derivative"`
	EndRadius             float64 `yaml:"end_radius" mapstructure:"end_radius" json:"end_radius"`
	EndRadiusDerivative   float64 `yaml:"end_radius_derivative" mapstructure:"end_radius_derivative" json:"end_radius_derivative"`

	StartMZWidth           float64 `yaml:"start_mz_width" mapstructure:"start_mz_width" json:"start_mz_width"`
	StartMZWidthDerivative float64 `yaml:"start_mz_width_derivative" mapstructure:"start_mz_width_derivative" json:"start_mz_width_derivative"`
	EndMZWidth             float64 `yaml:"end_mz_width" mapstructure:"end_mz_width" json:"end_mz_width"`
	EndMZWidthDerivative   float64 `yaml:"end_mz_width_derivative" mapstructure:"end_mz_width_derivative" json:"end_mz_width_derivative"`

	SegmentLength float64 `yaml:"segment_length" mapstructure:"segment_length" json:"segment_length"`
	WallThickness float64 `yaml:"wall_thickness" mapstructure:"wall_thickness" json:"wall_thickness"`

	UseCrossDerivatives  bool `yaml:"use_cross_derivatives" mapstructure:"use_cross_derivatives" json:"use_cross_derivatives"`
	UseLinearThroughWall bool `yaml:"use_linear_through_wall" mapstructure:"use_linear_through_wall" json:"use_linear_through_wall"`

	Refine                    bool `yaml:"refine" mapstructure:"refine" json:"refine"`
	RefineElementsAround      int  `yaml:"refine_elements_around" mapstructure:"refine_elements_around" json:"refine_elements_around"`
	RefineElementsAlong       int  `yaml:"refine_elements_along" mapstructure:"refine_elements_along" json:"refine_elements_along"`
	RefineElementsThroughWall int  `yaml:"refine_elements_through_wall" mapstructure:"refine_elements_through_wall" json:"refine_elements_through_wall"`
}

// Defaults are the options of the "Default" parameter set.
var Defaults = Options{
	ElementsAroundMZ:          2,
	ElementsAroundNonMZ:       8,
	ElementsAlong:             4,
	ElementsThroughWall:       1,
	StartRadius:               0.094,
	EndRadius:                 0.094,
	StartMZWidth:              0.08,
	EndMZWidth:                0.08,
	SegmentLength:             1.5,
	WallThickness:             0.055,
	UseLinearThroughWall:      true,
	RefineElementsAround:      1,
	RefineElementsAlong:       1,
	RefineElementsThroughWall: 1,
}

var parameterSets = []string{"Default", "Mouse 1"}

// ParameterSetNames lists the named parameter sets accepted by DefaultOptions.
func ParameterSetNames() []string {
	return append([]string(nil), parameterSets...)
}

// DefaultOptions returns the options of a parameter set. All sets currently share
// the same values. An unknown name returns false.
func DefaultOptions(parameterSet string) (Options, bool) {
	for _, name := range parameterSets {
		if name == parameterSet {
			return Defaults, true
		}
	}
	return Options{}, false
}

// Option is one named option value.
type Option struct {
	Name  string      `yaml:"name" json:"name"`
	Key   string      `yaml:"key" json:"key"`
	Value interface{} `yaml:"value" json:"value"`
}

// List returns the option values in display order.
func (o *Options) List() []Option {
	return []Option{
		{"Number of elements around mesenteric zone", "elements_around_mz", o.ElementsAroundMZ},
		{"Number of elements around non-mesenteric zone", "elements_around_non_mz", o.ElementsAroundNonMZ},
		{"Number of elements along segment", "elements_along", o.ElementsAlong},
		{"Number of elements through wall", "elements_through_wall", o.ElementsThroughWall},
		{"Start inner radius", "start_radius", o.StartRadius},
		{"Start radius derivative", "start_radius_derivative", o.StartRadiusDerivative},
		{"End inner radius", "end_radius", o.EndRadius},
		{"End radius derivative", "end_radius_derivative", o.EndRadiusDerivative},
		{"Start mesenteric zone width", "start_mz_width", o.StartMZWidth},
		{"Start mesenteric zone width derivative", "start_mz_width_derivative", o.StartMZWidthDerivative},
		{"End mesenteric zone width", "end_mz_width", o.EndMZWidth},
		{"End mesenteric zone width derivative", "end_mz_width_derivative", o.EndMZWidthDerivative},
		{"Segment length", "segment_length", o.SegmentLength},
		{"Wall thickness", "wall_thickness", o.WallThickness},
		{"Use cross derivatives", "use_cross_derivatives", o.UseCrossDerivatives},
		{"Use linear through wall", "use_linear_through_wall", o.UseLinearThroughWall},
		{"Refine", "refine", o.Refine},
		{"Refine number of elements around", "refine_elements_around", o.RefineElementsAround},
		{"Refine number of elements along segment", "refine_elements_along", o.RefineElementsAlong},
		{"Refine number of elements through wall", "refine_elements_through_wall", o.RefineElementsThroughWall},
	}
}

// OrderedOptionNames returns the display names of all options in order.
func OrderedOptionNames() []string {
	list := Defaults.List()
	names := make([]string, len(list))
	for i, opt := range list {
		names[i] = opt.Name
	}
	return names
}

// Correction records an option value changed by Check.
type Correction struct {
	Key string  `yaml:"key" json:"key"`
	Old float64 `yaml:"old" json:"old"`
	New float64 `yaml:"new" json:"new"`
}

// round2 rounds to two decimals, halves to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

type checker struct {
	out []Correction
}

func (c *checker) atLeast(key string, v *int, lo int) {
	if *v < lo {
		c.out = append(c.out, Correction{key, float64(*v), float64(lo)})
		*v = lo
	}
}

func (c *checker) even(key string, v *int) {
	if *v%2 != 0 {
		c.out = append(c.out, Correction{key, float64(*v), float64(*v + 1)})
		*v++
	}
}

func (c *checker) set(key string, v *float64, nv float64) {
	if nv != *v {
		c.out = append(c.out, Correction{key, *v, nv})
		*v = nv
	}
}

// Check corrects the options into the valid range in place and returns the changes
// made. It never fails; checking corrected options changes nothing.
func (o *Options) Check() []Correction {
	var c checker
	c.atLeast("elements_along", &o.ElementsAlong, 1)
	c.atLeast("elements_through_wall", &o.ElementsThroughWall, 1)
	c.atLeast("refine_elements_around", &o.RefineElementsAround, 1)
	c.atLeast("refine_elements_along", &o.RefineElementsAlong, 1)
	c.atLeast("refine_elements_through_wall", &o.RefineElementsThroughWall, 1)
	c.atLeast("elements_around_mz", &o.ElementsAroundMZ, 2)
	c.atLeast("elements_around_non_mz", &o.ElementsAroundNonMZ, 4)
	c.even("elements_around_mz", &o.ElementsAroundMZ)
	c.even("elements_around_non_mz", &o.ElementsAroundNonMZ)

	for _, f := range []struct {
		key string
		v   *float64
	}{
		{"start_radius", &o.StartRadius},
		{"end_radius", &o.EndRadius},
		{"start_mz_width", &o.StartMZWidth},
		{"end_mz_width", &o.EndMZWidth},
		{"segment_length", &o.SegmentLength},
		{"wall_thickness", &o.WallThickness},
	} {
		if *f.v < 0 {
			c.set(f.key, f.v, 0)
		}
	}

	minWidth := MinMZWidthAngle * math.Min(o.StartRadius, o.EndRadius)
	if o.StartMZWidth < minWidth {
		c.set("start_mz_width", &o.StartMZWidth, round2(minWidth))
	}
	if o.EndMZWidth < minWidth {
		c.set("end_mz_width", &o.EndMZWidth, round2(minWidth))
	}
	if maxWidth := MaxMZWidthFactor * o.StartRadius; o.StartMZWidth > maxWidth {
		c.set("start_mz_width", &o.StartMZWidth, round2(maxWidth))
	}
	if maxWidth := MaxMZWidthFactor * o.EndRadius; o.EndMZWidth > maxWidth {
		c.set("end_mz_width", &o.EndMZWidth, round2(maxWidth))
	}
	return c.out
}
