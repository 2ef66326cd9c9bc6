package cleanup

import "errors"

// ErrDanglingVoid is returned by AssocVoidShells when a void shell has
// no enclosing external. It is the one error this package's caller is
// expected to recover from locally: the void is left classified as its
// own external shell (report.Externals and report.ExternalID are
// updated in place) and the
// pipeline continues.
var ErrDanglingVoid = errors.New("cleanup: void shell has no enclosing external")
