/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bootstrap

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/entitybridge/registry"
	"github.com/suparena/entitybridge/store"
)

// Env is the environment handed to processing units at startup. Units query
// the store directly and call into the registry lazily; they must tolerate
// running before any bake has happened.
type Env struct {
	Store    store.Store
	Registry *registry.Registry
	Log      zerolog.Logger
}

// Unit is a processing unit: a consumer of entities instantiated exactly
// once at boot.
type Unit interface {
	// Name identifies the unit in the startup list.
	Name() string
	// Start is called once, after the unit is instantiated.
	Start(env Env) error
}

// Factory constructs a fresh Unit.
type Factory func() Unit

// Runner instantiates processing units from an explicit startup list.
// There is no implicit discovery: every available unit is registered as a
// factory, and the startup configuration names which ones run, in order.
type Runner struct {
	mu        sync.Mutex
	factories map[string]Factory
	units     map[string]Unit
	order     []string
}

// NewRunner creates a Runner with no registered factories.
func NewRunner() *Runner {
	return &Runner{
		factories: make(map[string]Factory),
		units:     make(map[string]Unit),
	}
}

// RegisterFactory makes a unit available under name. Registering the same
// name twice is an error; the first factory stays in force.
func (r *Runner) RegisterFactory(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("unit factory %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Run instantiates one instance of each unit named in cfg, in list order,
// and starts it. A name repeated in the list is instantiated only once.
// Unknown names and failing Start calls abort the run with an error.
func (r *Runner) Run(cfg Config, env Env) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range cfg.Units {
		if _, exists := r.units[name]; exists {
			continue
		}
		f, ok := r.factories[name]
		if !ok {
			return fmt.Errorf("no unit factory registered for %q", name)
		}
		unit := f()
		if err := unit.Start(env); err != nil {
			return fmt.Errorf("unit %q failed to start: %w", name, err)
		}
		r.units[name] = unit
		r.order = append(r.order, name)
		env.Log.Debug().Str("unit", name).Msg("processing unit started")
	}
	return nil
}

// Unit returns the running instance registered under name.
func (r *Runner) Unit(name string) (Unit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.units[name]
	return u, ok
}

// Units returns the names of running units in start order.
func (r *Runner) Units() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.order...)
}
