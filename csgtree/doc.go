// Package csgtree walks a CSG expression tree of Boolean-combined
// primitives (spec.md §4.7): depth-first left-to-right, tessellating
// leaves via an external Tessellator and combining interior nodes via
// package boolean, with per-region fault isolation so one bad leaf or
// evaluator failure never aborts a whole batch. WalkTreeParallel fans
// this out across a worker pool, one private *nmg.Model per worker, the
// Go-idiomatic realization of spec.md §5's "cooperative parallelism
// across regions."
package csgtree
