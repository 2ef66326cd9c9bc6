// Package cleanup implements the topological cleanup pipeline run after
// every Boolean evaluation: kill cracks, kill zero-length edge-uses,
// decompose a shell into its maximally connected pieces, then classify
// and merge void shells back into their enclosing externals.
//
// The four stages are independent entry points rather than one
// monolithic Run function, mirroring the teacher's preference for
// small composable functions over a single do-everything call; a
// caller assembles its own pipeline order (KillCracks, then
// KillZeroLengthEdgeUses, then Decompose, then FindVoidShells +
// AssocVoidShells + MergeShells) the way spec.md's combined pipeline
// does.
package cleanup
