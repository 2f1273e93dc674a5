package scaffoldmaker

import (
	"fmt"

	"github.com/msan126/scaffoldmaker/colon"
	"github.com/msan126/scaffoldmaker/geometry"
	"github.com/msan126/scaffoldmaker/tubemesh"
)

// Rings returns the inner rings of every plane of a generated tube in the local frame
// of their segment. Planes shared by consecutive segments appear once.
func Rings(res *tubemesh.Result) []colon.Ring {
	var rings []colon.Ring
	for s, prof := range res.Profiles {
		around := len(prof.AnnotationArray)
		if around == 0 {
			continue
		}
		first := 0
		if s > 0 {
			first = 1
		}
		for n2 := first; n2*around < len(prof.X); n2++ {
			i := n2 * around
			rings = append(rings, colon.Ring{X: prof.X[i : i+around], D1: prof.D1[i : i+around]})
		}
	}
	return rings
}

// GroupSummary is the size of one annotation group.
type GroupSummary struct {
	Name      string `yaml:"name" json:"name"`
	FMANumber string `yaml:"fma_number" json:"fma_number"`
	LyphID    string `yaml:"lyph_id" json:"lyph_id"`
	Elements  int    `yaml:"elements" json:"elements"`
}

// RingSummary describes one inner ring.
type RingSummary struct {
	Centroid     [3]float64 `yaml:"centroid,flow" json:"centroid"`
	Area         float64    `yaml:"area" json:"area"`
	LengthAround float64    `yaml:"length_around" json:"length_around"`
}

// Report summarises a generated colon segment.
type Report struct {
	Name        string         `yaml:"name" json:"name"`
	Options     Options        `yaml:"options" json:"options"`
	Corrections []Correction   `yaml:"corrections,omitempty" json:"corrections,omitempty"`
	Nodes       int            `yaml:"nodes" json:"nodes"`
	Elements    int            `yaml:"elements" json:"elements"`
	Groups      []GroupSummary `yaml:"groups" json:"groups"`
	Rings       []RingSummary  `yaml:"rings" json:"rings"`
}

// NewReport summarises res, generated from the checked options o.
func NewReport(o Options, corrections []Correction, res *tubemesh.Result) (*Report, error) {
	r := &Report{
		Name:        Name,
		Options:     o,
		Corrections: corrections,
		Nodes:       res.NextNodeIdentifier - 1,
		Elements:    res.NextElementIdentifier - 1,
	}
	for _, g := range res.AnnotationGroups {
		r.Groups = append(r.Groups, GroupSummary{Name: g.Name, FMANumber: g.FMANumber, LyphID: g.LyphID, Elements: g.Size()})
	}
	for i, ring := range Rings(res) {
		c, area, err := geometry.SectionCentroid(ring.X, ring.D1)
		if err != nil {
			return nil, fmt.Errorf("scaffoldmaker: ring %d: %w", i, err)
		}
		sum := RingSummary{Centroid: [3]float64{c.X, c.Y, c.Z}, Area: area}
		if i < len(res.LengthAround) {
			sum.LengthAround = res.LengthAround[i]
		}
		r.Rings = append(r.Rings, sum)
	}
	return r, nil
}
