package csgtree

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/BRL-CAD/nmgcore/nmg"
)

// WalkTreeParallel fans roots out across workers goroutines, each owning
// a private *nmg.Model (spec.md §5: "cooperative parallelism across
// regions... each worker owns an independent NMG model"). Context.Stats
// is shared and updated atomically, and calls to sink are serialized
// through a mutex, so sink need not be safe for concurrent use; every
// other piece of state is worker-private. A workers <= 0 defaults to
// one worker per root, capped at len(roots).
func WalkTreeParallel(ctx *Context, roots []*Tree, sink RegionSink, tess Tessellator, workers int) Snapshot {
	if len(roots) == 0 {
		return ctx.Stats.Snapshot()
	}
	if workers <= 0 || workers > len(roots) {
		workers = len(roots)
	}

	base := ctx.Cancel
	if base == nil {
		base = context.Background()
	}
	jobs := make(chan *Tree)
	g, _ := errgroup.WithContext(base)

	var sinkMu sync.Mutex
	serialSink := RegionSinkFunc(func(r *nmg.Region) {
		sinkMu.Lock()
		defer sinkMu.Unlock()
		sink.WriteRegion(r)
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			m := nmg.NewModel()
			for root := range jobs {
				if ctx.canceled() {
					continue
				}
				evaluateRegion(ctx, root, serialSink, tess, m)
			}
			return nil
		})
	}

	go func() {
		for _, root := range roots {
			jobs <- root
		}
		close(jobs)
	}()

	_ = g.Wait()
	return ctx.Stats.Snapshot()
}
