/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitybridge

import (
	"github.com/rs/zerolog"

	"github.com/suparena/entitybridge/bake"
	"github.com/suparena/entitybridge/bootstrap"
	"github.com/suparena/entitybridge/host"
	"github.com/suparena/entitybridge/registry"
	"github.com/suparena/entitybridge/store"
	"github.com/suparena/entitybridge/store/memstore"
)

// World is the explicit context object owning one registry/baking pipeline.
// The caller constructs it once at startup and passes it by reference;
// there is no process-wide state, so multiple independent worlds can
// coexist and tests get deterministic setup and teardown.
type World struct {
	s          store.Store
	rt         host.Runtime
	bakers     *bake.Table
	reg        *registry.Registry
	dispatcher *bake.Dispatcher
	units      *bootstrap.Runner
	startup    bootstrap.Config
	log        zerolog.Logger
	booted     bool
}

// Option configures a World.
type Option func(*World)

// WithStore sets the component store. Defaults to a fresh in-memory store.
func WithStore(s store.Store) Option {
	return func(w *World) {
		w.s = s
	}
}

// WithLogger sets the structured logger used across the pipeline.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(w *World) {
		w.log = log
	}
}

// WithBakers sets a pre-populated baker table.
func WithBakers(t *bake.Table) Option {
	return func(w *World) {
		w.bakers = t
	}
}

// WithUnits sets a pre-populated processing unit runner.
func WithUnits(r *bootstrap.Runner) Option {
	return func(w *World) {
		w.units = r
	}
}

// WithStartup sets the processing unit startup list applied at Boot.
func WithStartup(cfg bootstrap.Config) Option {
	return func(w *World) {
		w.startup = cfg
	}
}

// New creates a World over the given host runtime.
func New(rt host.Runtime, opts ...Option) *World {
	w := &World{
		rt:  rt,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.s == nil {
		w.s = memstore.New()
	}
	if w.bakers == nil {
		w.bakers = bake.NewTable()
	}
	if w.units == nil {
		w.units = bootstrap.NewRunner()
	}
	w.reg = registry.New(w.s, registry.WithLogger(w.log))
	w.dispatcher = bake.NewDispatcher(w.bakers, w.reg, w.rt, bake.WithLogger(w.log))
	return w
}

// Store returns the component store.
func (w *World) Store() store.Store { return w.s }

// Registry returns the entity registry.
func (w *World) Registry() *registry.Registry { return w.reg }

// Bakers returns the baker table, for registration before Boot or for an
// explicit Reset-and-rebuild.
func (w *World) Bakers() *bake.Table { return w.bakers }

// Dispatcher returns the baking dispatcher.
func (w *World) Dispatcher() *bake.Dispatcher { return w.dispatcher }

// Units returns the processing unit runner.
func (w *World) Units() *bootstrap.Runner { return w.units }

// Boot runs once before the first processing tick: it starts the processing
// units named in the startup list and performs the initial full bake.
// Calling Boot again is a no-op.
func (w *World) Boot() error {
	if w.booted {
		return nil
	}
	env := bootstrap.Env{
		Store:    w.s,
		Registry: w.reg,
		Log:      w.log,
	}
	if err := w.units.Run(w.startup, env); err != nil {
		return err
	}
	baked := w.dispatcher.BakeAll()
	w.log.Info().Int("baked", baked).Msg("boot bake complete")
	w.booted = true
	return nil
}

// ContextLoaded re-runs the full bake after an aggregate context (such as a
// scene) finishes loading. Hosts baked before keep their entities; their
// bakers observe IsRebake.
func (w *World) ContextLoaded() {
	baked := w.dispatcher.BakeAll()
	w.log.Info().Int("baked", baked).Msg("context-load bake complete")
}

// Close signals global teardown to the registry. Destruction callbacks that
// fire afterwards become no-ops.
func (w *World) Close() {
	w.reg.Close()
}
