package csgtree

import "github.com/BRL-CAD/nmgcore/boolean"

// NodeKind distinguishes a Tree's two node shapes.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeOp
)

// Leaf references a database primitive; Data is opaque to csgtree and
// passed straight through to the Tessellator (spec.md §4.8: "the core
// treats it as opaque").
type Leaf struct {
	ID   string
	Data any
}

// Tree is one node of a CSG expression: either a Leaf or a Boolean
// operator over two children (spec.md §4.7: "leaves reference database
// primitives and... interior nodes are Boolean operators").
type Tree struct {
	Kind        NodeKind
	Leaf        *Leaf
	Op          boolean.Op
	Left, Right *Tree
}

// NewLeaf builds a leaf node.
func NewLeaf(id string, data any) *Tree {
	return &Tree{Kind: NodeLeaf, Leaf: &Leaf{ID: id, Data: data}}
}

// NewOp builds an interior Boolean-operator node over left and right.
func NewOp(op boolean.Op, left, right *Tree) *Tree {
	return &Tree{Kind: NodeOp, Op: op, Left: left, Right: right}
}
