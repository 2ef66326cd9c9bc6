// Package boolean implements the five-stage Boolean evaluator: fuse,
// intersectFaces, classify, cullByOperator, and stitch.
//
// Evaluate treats both operands as convex solids — each face's
// supporting plane is also a supporting half-space of the whole shell,
// exactly as holds for the reference box/sphere/cone tessellations in
// package primitives (a faceted approximation of a convex surface is
// itself a convex polyhedron). A shell with an internal cavity is
// modeled as two convex shells (outer plus void) associated by
// cleanup.FindVoidShells/AssocVoidShells, not as one non-convex
// boundary, which covers that one case without help from this
// package. Evaluate does not attempt general non-convex or
// self-intersecting polyhedron Boolean (see SPEC_FULL.md §4.3/§11 and
// DESIGN.md's ledger entry for this package), and it does not detect
// such operands either: a non-convex operand is clipped exactly like a
// convex one, and Evaluate returns the resulting shell without an
// error even though that shell does not in general bound A op B.
//
// Each face of one operand is clipped against every supporting
// half-space of the other using a sequential remainder clip (the same
// technique brush-based CSG/BSP tools use to split a convex polygon
// against a convex volume): the part of the face already known inside
// every half-space tested so far is clipped further; whatever falls
// outside a given half-space is peeled off as one output fragment. The
// final remainder, once every half-space has been tested, is the part
// of the face entirely inside the other solid.
package boolean
