package csgtree

import (
	"errors"
	"fmt"

	"github.com/BRL-CAD/nmgcore/boolean"
	"github.com/BRL-CAD/nmgcore/cleanup"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/triangulate"
)

// WalkTree evaluates root as one region (spec.md §4.7): depth-first
// left-to-right, tessellating leaves and combining interior nodes with
// the Boolean evaluator, then running the cleanup pipeline before
// handing the surviving region to sink. Region-level faults (a bad
// tessellation, an indeterminate Boolean, a recovered panic) are
// isolated by checkpoint: the region is counted as tried but not
// converted, and WalkTree returns normally.
func WalkTree(ctx *Context, root *Tree, sink RegionSink, tess Tessellator) Snapshot {
	m := nmg.NewModel()
	evaluateRegion(ctx, root, sink, tess, m)
	return ctx.Stats.Snapshot()
}

// WalkForest evaluates each of roots in turn, sequentially, sharing one
// *nmg.Model and one Context.Stats accumulation — the non-parallel
// analogue of WalkTreeParallel for a caller with a TreeSource yielding
// several region roots.
func WalkForest(ctx *Context, roots []*Tree, sink RegionSink, tess Tessellator) Snapshot {
	m := nmg.NewModel()
	for _, root := range roots {
		if ctx.canceled() {
			break
		}
		evaluateRegion(ctx, root, sink, tess, m)
	}
	return ctx.Stats.Snapshot()
}

func evaluateRegion(ctx *Context, root *Tree, sink RegionSink, tess Tessellator, m *nmg.Model) {
	ctx.Stats.Tried.Add(1)

	err := checkpoint(func() error {
		if ctx.canceled() {
			return ErrCanceled
		}
		shell, err := evalNode(ctx, root, tess, m)
		if err != nil {
			return err
		}
		if ctx.canceled() {
			return ErrCanceled
		}

		region := shell.RegionP
		cleanup.Decompose(shell)
		if err := triangulate.TriangulateRegion(region, ctx.Tol); err != nil {
			return err
		}
		report, err := cleanup.FindVoidShells(region, ctx.Tol)
		if err != nil {
			return err
		}
		if assocErr := cleanup.AssocVoidShells(region, &report, ctx.Tol); assocErr != nil &&
			!errors.Is(assocErr, cleanup.ErrDanglingVoid) {
			return assocErr
		}
		for v, tag := range report.VoidTag {
			ext := externalByID(report, -tag)
			if ext == nil || ext == v {
				continue
			}
			if err := cleanup.MergeShells(ext, v); err != nil {
				return err
			}
		}

		if err := nmg.Validate(region.Model()); err != nil {
			return err
		}
		if regionIsEmpty(region) {
			return fmt.Errorf("csgtree: region converged to the empty set")
		}

		ctx.Stats.Converted.Add(1)
		sink.WriteRegion(region)
		ctx.Stats.Written.Add(1)
		return nil
	})
	if err != nil {
		ctx.Log.Debugf("csgtree: region failed: %v", err)
	}
}

// regionIsEmpty reports whether r has no faces in any of its shells —
// the genuinely-empty-set outcome (e.g. a region whose root evaluated
// SUBTRACT(A, A)) a shell with zero faces still represents, even
// though it remains one *nmg.Shell in r.Shells rather than vanishing
// from the slice outright.
func regionIsEmpty(r *nmg.Region) bool {
	for _, s := range r.Shells {
		if len(s.Faces) > 0 {
			return false
		}
	}
	return true
}

func externalByID(report cleanup.VoidReport, id int) *nmg.Shell {
	for s, eid := range report.ExternalID {
		if eid == id {
			return s
		}
	}
	return nil
}

// evalNode recursively evaluates node, tessellating leaves into m and
// combining interior nodes via the Boolean evaluator, freeing each
// child's shell immediately after it is consumed (spec.md §4.7 step 3:
// "free the consumed input shells immediately to bound peak memory").
func evalNode(ctx *Context, node *Tree, tess Tessellator, m *nmg.Model) (*nmg.Shell, error) {
	if ctx.canceled() {
		return nil, ErrCanceled
	}

	switch node.Kind {
	case NodeLeaf:
		region, err := tess.Tessellate(node.Leaf, ctx.Tol, ctx.TTol, m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTessellation, err)
		}
		if region == nil || len(region.Shells) == 0 {
			return nil, ErrTessellation
		}
		return region.Shells[0], nil

	case NodeOp:
		left, err := evalNode(ctx, node.Left, tess, m)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(ctx, node.Right, tess, m)
		if err != nil {
			return nil, err
		}
		if ctx.canceled() {
			return nil, ErrCanceled
		}

		out, err := boolean.Evaluate(node.Op, left, right, ctx.Tol)
		if err != nil {
			return nil, err
		}
		left.Kill()
		if right != nil && right != left {
			right.Kill()
		}
		return out, nil

	default:
		return nil, fmt.Errorf("csgtree: unknown node kind %d", node.Kind)
	}
}

// checkpoint is the Go-idiomatic replacement for the setjmp/longjmp
// region boundary spec.md §9 calls for: it runs fn and converts any
// panic — a resource-exhaustion allocation failure, a slice
// out-of-range from unexpectedly malformed topology, or anything else —
// into an ordinary error, exactly as if fn had returned one.
func checkpoint(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("csgtree: region aborted: %w", e)
				return
			}
			err = fmt.Errorf("csgtree: region aborted: %v", r)
		}
	}()
	return fn()
}
