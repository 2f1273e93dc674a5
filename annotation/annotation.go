// Package annotation tags mesh elements with anatomical names.
package annotation

// Anatomical names used by the colon meshtypes.
const (
	MesentericZone    = "mesenteric zone"
	NonMesentericZone = "non-mesenteric zone"
)

// Placeholders for terms that have no ontology id yet.
const (
	UnknownFMANumber = "FMANumber unknown"
	UnknownLyphID    = "Lyph ID unknown"
)

// Group is a named set of element identifiers.
type Group struct {
	Name      string `json:"name" yaml:"name"`
	FMANumber string `json:"fma_number" yaml:"fma_number"`
	LyphID    string `json:"lyph_id" yaml:"lyph_id"`

	elements []int
}

// NewGroup creates an empty group with unknown ontology ids.
func NewGroup(name string) *Group {
	return &Group{Name: name, FMANumber: UnknownFMANumber, LyphID: UnknownLyphID}
}

// AddElement records element id as a member of the group.
func (g *Group) AddElement(id int) { g.elements = append(g.elements, id) }

// Elements returns the member element ids in insertion order.
func (g *Group) Elements() []int { return g.elements }

// Size is the number of member elements.
func (g *Group) Size() int { return len(g.elements) }

// Find returns the group with the given name, or nil.
func Find(groups []*Group, name string) *Group {
	for _, g := range groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}
