// Package nmg implements the Non-Manifold Geometry boundary-representation
// topology store: the winged-edge-plus-uses data model of Model, Region,
// Shell, Face/FaceUse, Loop/LoopUse, Edge/EdgeUse, and Vertex/VertexUse,
// and the constructor/kill lifecycle that keeps them consistent.
//
// Every geometric element appears twice in this model: once as the shared
// element (Face, Loop, Edge) and once as an oriented "use" of it
// (FaceUse, LoopUse, EdgeUse) referenced from whatever contains it. A
// Vertex is the one exception — it has many VertexUses, not two.
//
// Ownership is by containment: a Model owns Regions, a Region owns
// Shells, a Shell owns the Faces/wire-loops/wire-edges/lone-vertices
// reachable from it. Kill on any object recursively frees everything it
// exclusively owns and splices itself out of shared structures (radial
// chains, mate pairs) it does not own outright.
//
// Rather than the hand-linked pointer graphs and 32-bit magic-number type
// tags of the system this package's design is adapted from, every object
// carries a small Obj header (a dense global index plus a Kind tag) and
// relations that cross object kinds are ordinary Go pointers. The global
// index gives O(1) "visited?" bitmarks over every live object via MarkSet,
// without needing a separate index space per kind.
package nmg
