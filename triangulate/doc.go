// Package triangulate replaces a face's loop system with a set of
// triangular loops (spec.md §4.5): project into the face's plane, merge
// any OT_OPPOSITE hole loops into the outer loop via coincident bridge
// edges, then ear-clip the resulting simple polygon.
//
// The outer-loop-plus-holes framing and the perimeter-then-holes
// insertion order follow the same three-phase shape
// (normalize-PSLG / insert-or-bridge / classify-and-export) as the
// constrained-Delaunay builder in the retrieved pack's other_examples
// material, adapted here to plain ear-clipping since this package's
// input polygons are already simple and planar — no Delaunay
// legalization is needed to triangulate a single known-simple face.
package triangulate
