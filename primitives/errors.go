package primitives

import "errors"

// ErrDegenerate is returned when a primitive's parameters describe no
// volume at all (e.g. a cone whose apex coincides with its base
// center).
var ErrDegenerate = errors.New("primitives: degenerate parameters")
