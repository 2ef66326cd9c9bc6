package triangulate

import "errors"

// ErrFailed is returned by TriangulateFace when ear-clipping cannot
// make progress on a degenerate or self-intersecting polygon
// (spec.md's TriangulationFailed). The face is left unchanged.
var ErrFailed = errors.New("triangulate: ear clipping failed on a degenerate polygon")
