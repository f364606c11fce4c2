/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bake

import (
	"github.com/suparena/entitybridge/host"
	"github.com/suparena/entitybridge/store"
)

// Context carries the inputs of one bake call. It is transient: built for a
// single invocation and never persisted.
type Context struct {
	// Host is the object carrying the authoring data.
	Host host.Object
	// Entity is the entity owned by Host, created on first bake.
	Entity store.EntityID
	// Store is the component store the baker writes to.
	Store store.Store
	// IsRebake is true when Host already owned Entity before this call.
	// Bakers read it to decide whether to reset or merge existing entity
	// state; the dispatcher never preserves or clears anything itself.
	IsRebake bool
}

// Baker transforms authoring data of type T into canonical components and
// buffers on the entity in ctx. Implementations must be idempotent per
// object: re-running against an unchanged authoring payload must not grow
// entity state.
type Baker[T any] interface {
	Bake(ctx *Context, authoring T) error
}

// BakerFunc adapts a function to the Baker interface.
type BakerFunc[T any] func(ctx *Context, authoring T) error

func (f BakerFunc[T]) Bake(ctx *Context, authoring T) error {
	return f(ctx, authoring)
}
