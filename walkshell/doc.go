// Package walkshell implements the shell-patch output traversal of
// spec.md §4.6: a single ordered stream of vertex references covering
// every triangle of every face of a shell, connected via radial walks
// where adjacent triangles share an edge, and bridged by a
// duplicated-vertex discontinuity marker wherever the radial walk runs
// out and the nearest unvisited triangle must be jumped to instead.
// This is the representation format writers (TANKILL and similar)
// consume.
package walkshell
