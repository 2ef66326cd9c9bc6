package csgtree

import "errors"

// ErrTessellation wraps whatever error an external Tessellator returned
// (spec.md's TessError), or reports an empty tessellation result.
var ErrTessellation = errors.New("csgtree: tessellation failed")

// ErrCanceled is returned when a region's evaluation observes
// ctx.Cancel done partway through (spec.md §5: "cancelling mid-region
// is equivalent to a bomb").
var ErrCanceled = errors.New("csgtree: region canceled")
