/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package host

import "reflect"

// Object is an externally-owned host object. The host runtime controls its
// lifetime; EntityBridge only observes it. An Object never embeds a
// reference to its entity; that relation is held by the registry alone.
type Object interface {
	// ID is the runtime-unique identity of the object, stable for its
	// lifetime.
	ID() uint64
	// Name is a human-readable label used in logs and errors.
	Name() string
	// Parent returns the enclosing object, or nil for a root.
	Parent() Object
	// Authoring returns the authoring payloads carried by the object.
	// Objects with no authoring data return an empty slice.
	Authoring() []any
	// HasMarker reports whether a marker of the given type is attached
	// directly to this object.
	HasMarker(kind reflect.Type) bool
	// Alive reports whether the object has not yet been destroyed.
	Alive() bool
	// OnDestroy registers fn to run when the runtime destroys the object.
	// Callbacks fire at most once, after the object leaves the live set.
	OnDestroy(fn func(Object))
}

// Runtime is the host runtime surface consumed by the baking dispatcher.
type Runtime interface {
	// Objects returns the currently live objects. Order is unspecified
	// and callers must not depend on it.
	Objects() []Object
}

// NearestAncestorWithMarker walks from obj up through its parents and
// returns the first object carrying a marker of the given type, or nil.
// The search includes obj itself.
func NearestAncestorWithMarker(obj Object, kind reflect.Type) Object {
	for cur := obj; cur != nil; cur = cur.Parent() {
		if cur.HasMarker(kind) {
			return cur
		}
	}
	return nil
}

// AncestryHasMarker reports whether obj or any of its ancestors carries a
// marker of the given type.
func AncestryHasMarker(obj Object, kind reflect.Type) bool {
	return NearestAncestorWithMarker(obj, kind) != nil
}
