/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/suparena/entitybridge/host"
	"github.com/suparena/entitybridge/store"
)

// Convenience accessors that resolve a host object's entity and delegate to
// the store. Pure pass-throughs: unmapped hosts surface NotRegisteredError
// and everything else is the store's behavior unchanged.

// Component returns the component of type K on the entity owned by obj.
func Component[K any](r *Registry, obj host.Object) (K, error) {
	var zero K
	entity, err := r.Resolve(obj)
	if err != nil {
		return zero, err
	}
	return store.GetComponent[K](r.Store(), entity)
}

// HasComponent reports whether the entity owned by obj carries a component
// of type K.
func HasComponent[K any](r *Registry, obj host.Object) (bool, error) {
	entity, err := r.Resolve(obj)
	if err != nil {
		return false, err
	}
	return store.HasComponent[K](r.Store(), entity), nil
}

// SetComponent overwrites an existing component of type K on the entity
// owned by obj.
func SetComponent[K any](r *Registry, obj host.Object, value K) error {
	entity, err := r.Resolve(obj)
	if err != nil {
		return err
	}
	return store.SetComponent(r.Store(), entity, value)
}

// AddOrSetComponent attaches or overwrites a component of type K on the
// entity owned by obj.
func AddOrSetComponent[K any](r *Registry, obj host.Object, value K) error {
	entity, err := r.Resolve(obj)
	if err != nil {
		return err
	}
	return store.AddOrSetComponent(r.Store(), entity, value)
}

// Buffer returns the buffer with element type K on the entity owned by obj.
func Buffer[K any](r *Registry, obj host.Object) (store.Buffer, error) {
	entity, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	return store.GetBuffer[K](r.Store(), entity)
}

// AddBuffer attaches a new buffer with element type K to the entity owned
// by obj.
func AddBuffer[K any](r *Registry, obj host.Object, capacityHint int) (store.Buffer, error) {
	entity, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	return store.AddBuffer[K](r.Store(), entity, capacityHint)
}
