package tubemesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/msan126/scaffoldmaker/annotation"
	"github.com/msan126/scaffoldmaker/interp"
	"github.com/msan126/scaffoldmaker/mesh"
)

// surface is the inner surface of one plane in world coordinates.
type surface struct {
	x, d1, d2 []r3.Vec
}

// Generate builds the tube mesh into region. The provider supplies the inner profile
// of each segment; planes shared by consecutive segments are created once.
func Generate(region Region, p Params, provider ProfileProvider) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	around := p.ElementsAround
	along := p.ElementsAlongSegment
	res := &Result{}
	var (
		planes  []surface
		labels  []string
		transit []bool
	)
	for s := 0; s < p.SegmentCount; s++ {
		start := Boundary{p.Radius[s], p.RadiusDerivative[s], p.Width[s], p.WidthDerivative[s]}
		end := Boundary{p.Radius[s+1], p.RadiusDerivative[s+1], p.Width[s+1], p.WidthDerivative[s+1]}
		prof, err := provider.InnerPoints(start, end)
		if err != nil {
			return nil, fmt.Errorf("tubemesh: segment %d: %w", s, err)
		}
		if err := checkProfile(prof, around, along); err != nil {
			return nil, fmt.Errorf("segment %d: %w", s, err)
		}
		res.Profiles = append(res.Profiles, prof)
		if s == 0 {
			res.AnnotationGroups = prof.AnnotationGroups
			labels = prof.AnnotationArray
			transit = prof.TransitElements
		}
		first := 0
		if s > 0 {
			first = 1 // shared with the last plane of the previous segment
		}
		for n2 := first; n2 <= along; n2++ {
			xi := float64(n2) / float64(along)
			centre, frame := p.Path.frame(s, xi, p.SegmentLength)
			sf := surface{
				x:  make([]r3.Vec, around),
				d1: make([]r3.Vec, around),
				d2: make([]r3.Vec, around),
			}
			for n1 := 0; n1 < around; n1++ {
				i := n2*around + n1
				local := prof.X[i]
				local.Z = 0
				sf.x[n1] = r3.Add(centre, frame.apply(local))
				sf.d1[n1] = frame.apply(prof.D1[i])
				sf.d2[n1] = frame.applyAlong(prof.D2[i])
			}
			planes = append(planes, sf)
			res.Centres = append(res.Centres, centre)
			res.U = append(res.U, prof.U[n2])
			res.LengthAround = append(res.LengthAround, prof.LengthAround[n2])
		}
	}

	ids, err := createNodes(region, p, planes, transit, res)
	if err != nil {
		return nil, err
	}
	createElements(region, p, ids, labels, res)
	return res, nil
}

func checkProfile(prof *InnerProfile, around, along int) error {
	planes := along + 1
	n := planes * around
	switch {
	case prof == nil:
		return invalid("provider returned no profile")
	case len(prof.X) != n || len(prof.D1) != n || len(prof.D2) != n:
		return invalid("profile has %d/%d/%d nodes, want %d", len(prof.X), len(prof.D1), len(prof.D2), n)
	case len(prof.AnnotationArray) != around || len(prof.TransitElements) != around:
		return invalid("profile labels %d elements around, want %d", len(prof.AnnotationArray), around)
	case len(prof.U) != planes || len(prof.LengthAround) != planes:
		return invalid("profile has %d arc length planes, want %d", len(prof.U), planes)
	}
	return nil
}

// frame is an orthonormal basis mapping local ring coordinates (axis = z) to world.
type frame struct {
	e1, e2, e3 r3.Vec
	alongScale float64 // world along length per local along length
}

func (f frame) apply(v r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, f.e1), r3.Scale(v.Y, f.e2)), r3.Scale(v.Z, f.e3))
}

func (f frame) applyAlong(v r3.Vec) r3.Vec {
	v.Z *= f.alongScale
	return f.apply(v)
}

// frame returns the centre and local frame at xi on path segment s.
func (c CentralPath) frame(s int, xi, segmentLength float64) (r3.Vec, frame) {
	centre := interp.CubicHermiteVec(c.X[s], c.D1[s], c.X[s+1], c.D1[s+1], xi)
	tangent := interp.CubicHermiteDerivativeVec(c.X[s], c.D1[s], c.X[s+1], c.D1[s+1], xi)
	var d12a, d12b r3.Vec
	if len(c.D12) == len(c.X) {
		d12a, d12b = c.D12[s], c.D12[s+1]
	}
	side := interp.CubicHermiteVec(c.D2[s], d12a, c.D2[s+1], d12b, xi)
	e3 := interp.SetMagnitude(tangent, 1)
	e2 := interp.SetMagnitude(r3.Sub(side, r3.Scale(r3.Dot(side, e3), e3)), 1)
	e1 := r3.Cross(e2, e3)
	return centre, frame{e1: e1, e2: e2, e3: e3, alongScale: r3.Norm(tangent) / segmentLength}
}

func createNodes(region Region, p Params, planes []surface, transit []bool, res *Result) ([][][]int, error) {
	throughWall := p.ElementsThroughWall
	ids := make([][][]int, len(planes))
	last := 0
	for n2, sf := range planes {
		kappa, err := interp.LoopCurvatures(sf.x, sf.d1, transit)
		if err != nil {
			return nil, fmt.Errorf("tubemesh: plane %d: %w", n2, err)
		}
		normals := make([]r3.Vec, len(sf.x))
		for n1 := range sf.x {
			normals[n1] = interp.SetMagnitude(r3.Cross(sf.d1[n1], sf.d2[n1]), 1)
		}
		ids[n2] = make([][]int, throughWall+1)
		for n3 := 0; n3 <= throughWall; n3++ {
			depth := p.WallThickness * float64(n3) / float64(throughWall)
			ids[n2][n3] = make([]int, len(sf.x))
			for n1 := range sf.x {
				node := mesh.Node{
					X:                r3.Add(sf.x[n1], r3.Scale(depth, normals[n1])),
					D1:               r3.Scale(1+depth*kappa[n1], sf.d1[n1]),
					D2:               sf.d2[n1],
					D3:               r3.Scale(p.WallThickness/float64(throughWall), normals[n1]),
					CrossDerivatives: p.UseCrossDerivatives,
				}
				last = region.CreateNode(node)
				ids[n2][n3][n1] = last
				res.X = append(res.X, node.X)
				res.D1 = append(res.D1, node.D1)
				res.D2 = append(res.D2, node.D2)
				res.D3 = append(res.D3, node.D3)
			}
		}
	}
	res.NextNodeIdentifier = last + 1
	return ids, nil
}

func createElements(region Region, p Params, ids [][][]int, labels []string, res *Result) {
	around := p.ElementsAround
	groups := make([]*annotation.Group, around)
	for e1, name := range labels {
		groups[e1] = annotation.Find(res.AnnotationGroups, name)
	}
	last := 0
	for e2 := 0; e2 < len(ids)-1; e2++ {
		for e3 := 0; e3 < p.ElementsThroughWall; e3++ {
			for e1 := 0; e1 < around; e1++ {
				n := (e1 + 1) % around
				el := mesh.Element{
					Nodes: [8]int{
						ids[e2][e3][e1], ids[e2][e3][n], ids[e2+1][e3][e1], ids[e2+1][e3][n],
						ids[e2][e3+1][e1], ids[e2][e3+1][n], ids[e2+1][e3+1][e1], ids[e2+1][e3+1][n],
					},
					CubicThroughWall: p.UseCubicHermiteThroughWall,
				}
				last = region.CreateElement(el)
				if g := groups[e1]; g != nil {
					g.AddElement(last)
				}
			}
		}
	}
	res.NextElementIdentifier = last + 1
}
