package boolean

import "errors"

// ErrIndeterminate is returned when Evaluate gets a nil a operand, an
// Intersect with a nil b operand, or a degenerate fused operand face
// (fewer than three vertices where three were expected, before any
// clipping runs). Non-convex or self-intersecting operands are not
// detected and do not produce it. A legitimately empty
// result (e.g. SUBTRACT(A, A)) is not indeterminate — Evaluate returns
// it as a normal empty-faced Shell. The caller's region checkpoint
// discards any in-progress scratch model and moves on; no cross-shell
// radial repair is attempted (spec.md's Open Question 3, resolved in
// DESIGN.md to "not attempted").
var ErrIndeterminate = errors.New("boolean: evaluation is indeterminate")
