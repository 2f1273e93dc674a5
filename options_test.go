package scaffoldmaker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, []string{"Default", "Mouse 1"}, ParameterSetNames())
	for _, name := range ParameterSetNames() {
		o, ok := DefaultOptions(name)
		require.True(t, ok, name)
		assert.Empty(t, o.Check(), name)
		assert.Empty(t, cmp.Diff(Defaults, o), name)
	}
	_, ok := DefaultOptions("Human 1")
	assert.False(t, ok)

	names := OrderedOptionNames()
	require.Len(t, names, 20)
	assert.Equal(t, "Number of elements around mesenteric zone", names[0])
	assert.Equal(t, "Use linear through wall", names[15])
	assert.Equal(t, "Refine number of elements through wall", names[19])

	list := Defaults.List()
	assert.Equal(t, 0.094, list[4].Value)
	assert.Equal(t, "start_radius", list[4].Key)
	assert.Equal(t, true, list[15].Value)
}

func TestCheck(t *testing.T) {
	for _, c := range []struct {
		name  string
		edit  func(o *Options)
		want  func(o *Options)
		fixes []Correction
	}{
		{
			name: "zero width raised to minimum",
			edit: func(o *Options) { o.StartMZWidth, o.EndMZWidth = 0, 0 },
			want: func(o *Options) { o.StartMZWidth, o.EndMZWidth = 0.02, 0.02 },
			fixes: []Correction{
				{Key: "start_mz_width", Old: 0, New: 0.02},
				{Key: "end_mz_width", Old: 0, New: 0.02},
			},
		},
		{
			name:  "wide start lowered to maximum",
			edit:  func(o *Options) { o.StartMZWidth = 0.5 },
			want:  func(o *Options) { o.StartMZWidth = 0.15 },
			fixes: []Correction{{Key: "start_mz_width", Old: 0.5, New: 0.15}},
		},
		{
			name:  "wide end lowered to its own maximum",
			edit:  func(o *Options) { o.EndRadius, o.EndMZWidth = 0.05, 0.2 },
			want:  func(o *Options) { o.EndRadius, o.EndMZWidth = 0.05, 0.08 },
			fixes: []Correction{{Key: "end_mz_width", Old: 0.2, New: 0.08}},
		},
		{
			name: "counts",
			edit: func(o *Options) {
				o.ElementsAroundMZ, o.ElementsAroundNonMZ = 1, 5
				o.ElementsAlong, o.ElementsThroughWall = 0, -2
				o.RefineElementsAround = 0
			},
			want: func(o *Options) {
				o.ElementsAroundMZ, o.ElementsAroundNonMZ = 2, 6
				o.ElementsAlong, o.ElementsThroughWall = 1, 1
			},
			fixes: []Correction{
				{Key: "elements_along", Old: 0, New: 1},
				{Key: "elements_through_wall", Old: -2, New: 1},
				{Key: "refine_elements_around", Old: 0, New: 1},
				{Key: "elements_around_mz", Old: 1, New: 2},
				{Key: "elements_around_non_mz", Old: 5, New: 6},
			},
		},
		{
			name: "negative lengths",
			edit: func(o *Options) { o.StartRadius, o.WallThickness, o.SegmentLength = -1, -0.1, -3 },
			want: func(o *Options) { o.StartRadius, o.WallThickness, o.SegmentLength, o.StartMZWidth = 0, 0, 0, 0 },
			fixes: []Correction{
				{Key: "start_radius", Old: -1, New: 0},
				{Key: "segment_length", Old: -3, New: 0},
				{Key: "wall_thickness", Old: -0.1, New: 0},
				{Key: "start_mz_width", Old: 0.08, New: 0},
			},
		},
		{
			name:  "odd mesenteric count",
			edit:  func(o *Options) { o.ElementsAroundMZ = 3 },
			want:  func(o *Options) { o.ElementsAroundMZ = 4 },
			fixes: []Correction{{Key: "elements_around_mz", Old: 3, New: 4}},
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			o := Defaults
			c.edit(&o)
			want := Defaults
			c.want(&want)

			fixes := o.Check()
			assert.Empty(t, cmp.Diff(want, o))
			assert.Empty(t, cmp.Diff(c.fixes, fixes))

			// checked options are stable
			again := o
			assert.Empty(t, again.Check())
			assert.Empty(t, cmp.Diff(o, again))
		})
	}
}
