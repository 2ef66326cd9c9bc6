// Package primitives ships reference box, sphere, and cone tessellators
// that exercise package csgtree and reproduce spec.md §8's worked
// scenarios (S1-S6: unit cubes, a cube with a concentric cavity,
// `(cube ∪ sphere) − cone`). A real ray-tracer's primitive library is
// out of scope for the core (spec.md §4.8 treats the tessellator as
// external, out-of-scope code); these exist only so this repo has
// something concrete to drive csgtree.WalkTree end to end.
//
// Grounded on the teacher's builder package (impl_platonic.go): each
// tessellator is a plain function that receives its destination model
// and emits vertices and faces in a fixed, pre-sorted order, so two
// calls with identical parameters always produce bit-identical
// topology.
package primitives
