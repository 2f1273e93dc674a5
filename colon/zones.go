// Package colon builds the inner surface of a colon segment with a simple
// mesenteric zone: cross-section rings, the along derivative field and the outer
// arc length parameter of every node.
package colon

import (
	"github.com/msan126/scaffoldmaker/annotation"
)

// Zones labels the elements around a ring. The mesenteric zone is centred on
// element boundary 0 and split in half at both ends of the ring.
type Zones struct {
	AroundMZ    int
	AroundNonMZ int

	Labels  []string // per element around
	Transit []bool   // per element around, first and last non-mesenteric elements
}

// NewZones computes the zone partition for the given element counts. It is shared by
// every ring of a segment.
func NewZones(aroundMZ, aroundNonMZ int) Zones {
	half := aroundMZ / 2
	n := aroundMZ + aroundNonMZ
	z := Zones{
		AroundMZ:    aroundMZ,
		AroundNonMZ: aroundNonMZ,
		Labels:      make([]string, n),
		Transit:     make([]bool, n),
	}
	for i := range z.Labels {
		if i < half || i >= half+aroundNonMZ {
			z.Labels[i] = annotation.MesentericZone
		} else {
			z.Labels[i] = annotation.NonMesentericZone
		}
	}
	if aroundNonMZ > 0 {
		z.Transit[half] = true
		z.Transit[half+aroundNonMZ-1] = true
	}
	return z
}

// Around is the number of elements around a ring.
func (z Zones) Around() int { return len(z.Labels) }

// Groups creates the empty annotation groups for the zones.
func (z Zones) Groups() []*annotation.Group {
	return []*annotation.Group{
		annotation.NewGroup(annotation.MesentericZone),
		annotation.NewGroup(annotation.NonMesentericZone),
	}
}
