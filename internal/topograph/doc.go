// Package topograph is a small, general-purpose labeled graph used as a
// connectivity substrate by the cleanup and walkshell packages.
//
// nmg's own topology (shells, face-uses, loop-uses, edge-uses, radial
// chains) already records adjacency, but several of its algorithms reduce
// to classic graph problems once that adjacency is projected onto a
// simpler structure:
//
//   - decompose (cleanup.Decompose) needs connected components over
//     "face-use shares an edge with face-use";
//   - the shell-patch walker (walkshell.WalkShellPatches) needs, on a
//     radial dead end, the nearest unvisited loop-use by centroid
//     distance.
//
// topograph models each of these as a Graph of string-keyed nodes and
// weighted edges and supplies BFS, DFS and a single-source nearest-node
// query over it. The DFS post-order (PostOrder) has no caller in this
// module. Two nodes may be joined by more than one Edge: a
// non-manifold NMG edge is shared by more than two faces, so the
// face-use adjacency graph built on top of topograph is naturally a
// multigraph, not a simple graph.
package topograph
