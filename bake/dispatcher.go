/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bake

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	eberrors "github.com/suparena/entitybridge/errors"
	"github.com/suparena/entitybridge/host"
	"github.com/suparena/entitybridge/registry"
)

// ExternallyManaged marks a host object whose subtree is baked by an
// external pipeline. The dispatcher skips any object carrying this marker
// in its ancestry. Detection is a marker probe, so the external system
// itself is never a dependency.
type ExternallyManaged struct{}

var externallyManagedKind = reflect.TypeOf(ExternallyManaged{})

// Dispatcher drives baker invocation over live host objects. All calls are
// serialized by the caller; no two bakes interleave.
type Dispatcher struct {
	table *Table
	reg   *registry.Registry
	rt    host.Runtime
	log   zerolog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher creates a Dispatcher over the given baker table, registry,
// and host runtime.
func NewDispatcher(table *Table, reg *registry.Registry, rt host.Runtime, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		table: table,
		reg:   reg,
		rt:    rt,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// BakeOne runs the baker bound to the exact runtime type of authoring
// against obj's entity, registering obj first if needed. Authoring types
// with no bound baker are skipped silently; not every payload needs baking.
//
// A failing or panicking baker is contained: the failure is logged with the
// authoring type and host identity and returned as a BakeError, degrading
// only this object.
func (d *Dispatcher) BakeOne(obj host.Object, authoring any) error {
	_, err := d.bakeOne(obj, authoring)
	return err
}

func (d *Dispatcher) bakeOne(obj host.Object, authoring any) (bool, error) {
	if authoring == nil {
		return false, nil
	}
	bnd, ok := d.table.lookup(reflect.TypeOf(authoring))
	if !ok {
		return false, nil
	}

	isRebake := d.reg.IsRegistered(obj)
	entity, err := d.reg.Register(obj)
	if err != nil {
		return false, err
	}
	if entity.IsNil() {
		// Registry already torn down; nothing to bake against.
		return false, nil
	}

	ctx := &Context{
		Host:     obj,
		Entity:   entity,
		Store:    d.reg.Store(),
		IsRebake: isRebake,
	}
	if err := d.invoke(bnd, ctx, authoring); err != nil {
		berr := eberrors.NewBakeError(bnd.authoring.String(), obj.Name(), err)
		d.log.Error().
			Uint64("host_id", obj.ID()).
			Str("host", obj.Name()).
			Str("authoring_type", bnd.authoring.String()).
			Str("baker", bnd.bakerName).
			Err(err).
			Msg("baker failed")
		return false, berr
	}
	return true, nil
}

// invoke runs the baker, converting a panic in user transformation logic
// into an error so one bad baker cannot take down a whole BakeAll pass.
func (d *Dispatcher) invoke(bnd binding, ctx *Context, authoring any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("baker panicked: %v", p)
		}
	}()
	return bnd.bake(ctx, authoring)
}

// BakeAll enumerates the currently live host objects and bakes every
// authoring payload they carry. Objects under an externally managed subtree
// are skipped. Failures are isolated per object; the pass always completes.
// Traversal order is unspecified and bakers must not depend on it.
//
// BakeAll returns the number of successful baker invocations.
func (d *Dispatcher) BakeAll() int {
	baked := 0
	for _, obj := range d.rt.Objects() {
		if host.AncestryHasMarker(obj, externallyManagedKind) {
			continue
		}
		for _, authoring := range obj.Authoring() {
			ok, _ := d.bakeOne(obj, authoring)
			if ok {
				baked++
			}
		}
	}
	return baked
}
