package csgtree

import (
	"context"

	"github.com/BRL-CAD/nmgcore/tolerance"
)

// Context carries every per-walk parameter explicitly (spec.md §9's
// re-architecture note: no package-level globals). Cancel is checked at
// region boundaries — before each tessellate call and after each
// Boolean, per spec.md §5.
type Context struct {
	Tol   tolerance.Tolerance
	TTol  tolerance.TriTolerance
	Stats *Stats
	Cancel context.Context
	Log   Log
}

// NewContext returns a Context with a fresh Stats and DiscardLog,
// ready for Options to customize.
func NewContext(tol tolerance.Tolerance, ttol tolerance.TriTolerance, opts ...Option) *Context {
	ctx := &Context{
		Tol:    tol,
		TTol:   ttol,
		Stats:  &Stats{},
		Cancel: context.Background(),
		Log:    DiscardLog,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Option customizes a Context built by NewContext.
type Option func(*Context)

// WithLog overrides the default no-op logger.
func WithLog(log Log) Option {
	return func(c *Context) { c.Log = log }
}

// WithCancel overrides the default context.Background cancel source.
func WithCancel(cancel context.Context) Option {
	return func(c *Context) { c.Cancel = cancel }
}

func (c *Context) canceled() bool {
	if c.Cancel == nil {
		return false
	}
	select {
	case <-c.Cancel.Done():
		return true
	default:
		return false
	}
}
