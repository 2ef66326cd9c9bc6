package nmg

import "fmt"

// InvariantKind names which structural invariant Validate found broken.
// It mirrors the abrupt "bomb out" diagnostics of the topology library
// this package's checks are modeled on, minus the process-ending part.
type InvariantKind int

const (
	InvariantMateMismatch InvariantKind = iota
	InvariantRadialBroken
	InvariantRingBroken
	InvariantOrphanVertexUse
	InvariantDegenerateLoop
	InvariantDanglingParent
)

func (k InvariantKind) String() string {
	switch k {
	case InvariantMateMismatch:
		return "mate pair mismatch"
	case InvariantRadialBroken:
		return "radial fan broken"
	case InvariantRingBroken:
		return "loop-use ring broken"
	case InvariantOrphanVertexUse:
		return "vertex-use not reachable from its vertex"
	case InvariantDegenerateLoop:
		return "loop-use has fewer than 3 edges and no point"
	case InvariantDanglingParent:
		return "object's parent does not list it back"
	default:
		return "unknown invariant"
	}
}

// ErrInvariant reports a single structural invariant violation found by
// Validate, naming which Kind of check failed and the object at fault.
type ErrInvariant struct {
	Kind   InvariantKind
	Object Handle
	Detail string
}

func (e *ErrInvariant) Error() string {
	return fmt.Sprintf("nmg: invariant violated (%s) at %s[%d]: %s",
		e.Kind, e.Object.Kind, e.Object.Global, e.Detail)
}

func bomb(kind InvariantKind, obj Handle, detail string) error {
	return &ErrInvariant{Kind: kind, Object: obj, Detail: detail}
}
