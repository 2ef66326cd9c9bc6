package nmg

// Kind tags which concrete type an object header belongs to. It replaces
// the magic-number-per-struct convention of hand-rolled C topology
// libraries with a single small sum type that every object carries.
type Kind int

const (
	KindModel Kind = iota
	KindRegion
	KindShell
	KindFace
	KindFaceUse
	KindLoop
	KindLoopUse
	KindEdge
	KindEdgeUse
	KindVertex
	KindVertexUse
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindRegion:
		return "region"
	case KindShell:
		return "shell"
	case KindFace:
		return "face"
	case KindFaceUse:
		return "faceuse"
	case KindLoop:
		return "loop"
	case KindLoopUse:
		return "loopuse"
	case KindEdge:
		return "edge"
	case KindEdgeUse:
		return "edgeuse"
	case KindVertex:
		return "vertex"
	case KindVertexUse:
		return "vertexuse"
	default:
		return "unknown"
	}
}

// Orientation distinguishes the two uses of a Face, Loop, or Edge. A
// boolean or cleanup operation that flips which side of a surface is
// "outside" does so by swapping which use carries OTSame.
type Orientation int

const (
	OTSame Orientation = iota
	OTOpposite
)

func (o Orientation) Flip() Orientation {
	if o == OTSame {
		return OTOpposite
	}
	return OTSame
}

func (o Orientation) String() string {
	if o == OTSame {
		return "OT_SAME"
	}
	return "OT_OPPOSITE"
}

// Handle is an any-object reference carrying its variant tag, used where
// code needs to refer to "some object" without caring which concrete Go
// type it is: bitmarks, debug dumps, error payloads.
type Handle struct {
	Kind   Kind
	Global int
}

// Obj is embedded as the first field of every concrete topology type. It
// assigns the object a dense index out of the model's shared counter
// (used by MarkSet) and tracks liveness for Kill.
type Obj struct {
	Idx  int
	Kind Kind
	Dead bool
}

func (o Obj) Handle() Handle { return Handle{Kind: o.Kind, Global: o.Idx} }

// MarkSet is a caller-owned, reusable index-keyed bitmark array sized to
// a model's current MaxIndex. Traversals that need "have I visited this
// object already" pass one around instead of allocating a map per call;
// in this module that is the void search (FindTopFace, called by
// cleanup.FindVoidShells).
type MarkSet struct {
	bits []bool
}

// NewMarkSet allocates a MarkSet sized to m's current index space.
func NewMarkSet(m *Model) *MarkSet {
	return &MarkSet{bits: make([]bool, m.MaxIndex())}
}

// Grow extends the MarkSet if m has allocated new objects since it was
// created or last grown. Existing marks are preserved.
func (ms *MarkSet) Grow(m *Model) {
	if need := m.MaxIndex(); need > len(ms.bits) {
		grown := make([]bool, need)
		copy(grown, ms.bits)
		ms.bits = grown
	}
}

func (ms *MarkSet) Mark(h Handle)     { ms.bits[h.Global] = true }
func (ms *MarkSet) Unmark(h Handle)   { ms.bits[h.Global] = false }
func (ms *MarkSet) Marked(h Handle) bool {
	if h.Global < 0 || h.Global >= len(ms.bits) {
		return false
	}
	return ms.bits[h.Global]
}
