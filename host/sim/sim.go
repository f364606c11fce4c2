/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sim provides an in-memory host.Runtime implementation for testing
// and for embedding EntityBridge without a real host environment.
package sim

import (
	"reflect"
	"sync"

	"github.com/suparena/entitybridge/host"
)

// Runtime is a simulated host runtime. Objects are created through it,
// optionally parented into a hierarchy, and destroyed explicitly.
type Runtime struct {
	mu      sync.Mutex
	nextID  uint64
	objects map[uint64]*Object
}

// New creates an empty simulated runtime.
func New() *Runtime {
	return &Runtime{
		objects: make(map[uint64]*Object),
	}
}

// ObjectOption configures an object at creation time.
type ObjectOption func(*Object)

// WithParent places the new object under parent in the hierarchy.
func WithParent(parent *Object) ObjectOption {
	return func(o *Object) {
		o.parent = parent
	}
}

// WithAuthoring attaches authoring payloads to the new object.
func WithAuthoring(payloads ...any) ObjectOption {
	return func(o *Object) {
		o.authoring = append(o.authoring, payloads...)
	}
}

// WithMarker attaches a marker value to the new object.
func WithMarker(marker any) ObjectOption {
	return func(o *Object) {
		o.markers[reflect.TypeOf(marker)] = marker
	}
}

// NewObject creates a live object owned by this runtime.
func (r *Runtime) NewObject(name string, opts ...ObjectOption) *Object {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	o := &Object{
		rt:      r,
		id:      r.nextID,
		name:    name,
		alive:   true,
		markers: make(map[reflect.Type]any),
	}
	for _, opt := range opts {
		opt(o)
	}
	r.objects[o.id] = o
	return o
}

// Objects returns the currently live objects.
func (r *Runtime) Objects() []host.Object {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]host.Object, 0, len(r.objects))
	for _, o := range r.objects {
		out = append(out, o)
	}
	return out
}

// Object is a simulated host object.
type Object struct {
	rt   *Runtime
	id   uint64
	name string

	mu         sync.Mutex
	parent     *Object
	authoring  []any
	markers    map[reflect.Type]any
	alive      bool
	destroyFns []func(host.Object)
}

// ID returns the runtime-unique identity of the object.
func (o *Object) ID() uint64 { return o.id }

// Name returns the object's label.
func (o *Object) Name() string { return o.name }

// Parent returns the enclosing object, or nil for a root.
func (o *Object) Parent() host.Object {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.parent == nil {
		return nil
	}
	return o.parent
}

// Authoring returns the authoring payloads carried by the object.
func (o *Object) Authoring() []any {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]any(nil), o.authoring...)
}

// AttachAuthoring adds an authoring payload to a live object.
func (o *Object) AttachAuthoring(payload any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.authoring = append(o.authoring, payload)
}

// AttachMarker adds a marker value to a live object.
func (o *Object) AttachMarker(marker any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.markers[reflect.TypeOf(marker)] = marker
}

// HasMarker reports whether a marker of the given type is attached.
func (o *Object) HasMarker(kind reflect.Type) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.markers[kind]
	return ok
}

// Alive reports whether the object has not been destroyed.
func (o *Object) Alive() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.alive
}

// OnDestroy registers fn to run when the object is destroyed.
// Registering on an already-destroyed object runs fn immediately, so late
// subscribers never miss the notification.
func (o *Object) OnDestroy(fn func(host.Object)) {
	o.mu.Lock()
	if o.alive {
		o.destroyFns = append(o.destroyFns, fn)
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()
	fn(o)
}

// Destroy removes the object from the runtime's live set and fires its
// destruction callbacks exactly once. Destroying twice is a no-op.
func (o *Object) Destroy() {
	o.mu.Lock()
	if !o.alive {
		o.mu.Unlock()
		return
	}
	o.alive = false
	fns := o.destroyFns
	o.destroyFns = nil
	o.mu.Unlock()

	o.rt.mu.Lock()
	delete(o.rt.objects, o.id)
	o.rt.mu.Unlock()

	for _, fn := range fns {
		fn(o)
	}
}
