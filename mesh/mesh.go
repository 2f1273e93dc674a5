// Package mesh is an in-memory host region for generated hexahedral meshes.
package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Node holds a node position and its derivatives with respect to element xi
// directions 1 (around), 2 (along) and 3 (through wall).
type Node struct {
	ID int    `json:"id" yaml:"id"`
	X  r3.Vec `json:"x" yaml:"x"`
	D1 r3.Vec `json:"d1" yaml:"d1"`
	D2 r3.Vec `json:"d2" yaml:"d2"`
	D3 r3.Vec `json:"d3" yaml:"d3"`

	// CrossDerivatives marks nodes carrying (zero) d2/dxi1dxi2 style cross derivatives.
	CrossDerivatives bool `json:"cross_derivatives,omitempty" yaml:"cross_derivatives,omitempty"`
}

// Element is a hexahedron listing its 8 node identifiers with xi1 varying fastest.
type Element struct {
	ID    int    `json:"id" yaml:"id"`
	Nodes [8]int `json:"nodes" yaml:"nodes"`

	// CubicThroughWall selects a cubic Hermite basis in xi3; otherwise linear Lagrange.
	CubicThroughWall bool `json:"cubic_through_wall" yaml:"cubic_through_wall"`
}

// Region stores nodes and elements and hands out identifiers.
type Region struct {
	Nodes    []Node
	Elements []Element

	nextNode    int
	nextElement int
}

// NewRegion creates an empty region. Identifiers start at 1.
func NewRegion() *Region {
	return &Region{nextNode: 1, nextElement: 1}
}

// CreateNode stores n under the next free identifier and returns it.
func (r *Region) CreateNode(n Node) int {
	if r.nextNode == 0 {
		r.nextNode = 1
	}
	n.ID = r.nextNode
	r.nextNode++
	r.Nodes = append(r.Nodes, n)
	return n.ID
}

// CreateElement stores e under the next free identifier and returns it.
func (r *Region) CreateElement(e Element) int {
	if r.nextElement == 0 {
		r.nextElement = 1
	}
	e.ID = r.nextElement
	r.nextElement++
	r.Elements = append(r.Elements, e)
	return e.ID
}

// Node returns the node with identifier id.
func (r *Region) Node(id int) (Node, bool) {
	i := id - 1
	if i < 0 || i >= len(r.Nodes) || r.Nodes[i].ID != id {
		for _, n := range r.Nodes {
			if n.ID == id {
				return n, true
			}
		}
		return Node{}, false
	}
	return r.Nodes[i], true
}

// NodeCount is the number of nodes stored.
func (r *Region) NodeCount() int { return len(r.Nodes) }

// ElementCount is the number of elements stored.
func (r *Region) ElementCount() int { return len(r.Elements) }

// Empty reports whether nothing has been created in the region.
func (r *Region) Empty() bool { return len(r.Nodes) == 0 && len(r.Elements) == 0 }
