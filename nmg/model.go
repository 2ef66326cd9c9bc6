package nmg

import "github.com/BRL-CAD/nmgcore/geom"

// Model is the top-level container: the set of Regions that make up a
// CSG primitive's tessellation or a boolean evaluator's working copy. It
// owns the shared global index counter every object's Obj.Idx is drawn
// from.
type Model struct {
	Regions []*Region

	nextIdx int
}

// NewModel returns an empty Model ready to receive regions.
func NewModel() *Model {
	return &Model{}
}

// MaxIndex returns one past the largest Obj.Idx ever allocated in m. A
// MarkSet sized to this value can be indexed directly by any live
// object's Handle.Global.
func (m *Model) MaxIndex() int {
	return m.nextIdx
}

func (m *Model) alloc(k Kind) Obj {
	idx := m.nextIdx
	m.nextIdx++
	return Obj{Idx: idx, Kind: k}
}

// NewRegion allocates an empty Region owned by m.
func (m *Model) NewRegion() *Region {
	r := &Region{Obj: m.alloc(KindRegion), model: m}
	m.Regions = append(m.Regions, r)
	return r
}

// NewVertex allocates a fresh Vertex at coord, owned by m and not yet
// referenced by any use. Tessellators call this once per facet corner;
// boolean.fuse is responsible for later merging coincident vertices
// produced this way into one.
func (m *Model) NewVertex(coord geom.Vec3) *Vertex {
	return &Vertex{Obj: m.alloc(KindVertex), model: m, Coord: coord}
}

func removeRegion(regions []*Region, r *Region) []*Region {
	for i, rr := range regions {
		if rr == r {
			return append(regions[:i], regions[i+1:]...)
		}
	}
	return regions
}
