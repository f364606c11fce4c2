/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"reflect"

	"github.com/google/uuid"
)

// EntityID is an opaque handle into the component store.
type EntityID uuid.UUID

// Nil is the zero EntityID. It never refers to a live entity.
var Nil EntityID

// String returns the canonical string form of the handle.
func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the handle is the zero value.
func (id EntityID) IsNil() bool {
	return id == Nil
}

// Kind identifies a component or buffer element type.
// Components are keyed by their exact Go type; at most one component of a
// given Kind exists per entity.
type Kind = reflect.Type

// KindOf returns the Kind for type K.
func KindOf[K any]() Kind {
	return reflect.TypeOf((*K)(nil)).Elem()
}

// Buffer is a handle to a growable ordered sequence of elements attached to
// an entity under a single element Kind.
type Buffer interface {
	// Len returns the number of elements in the buffer.
	Len() int
	// At returns the element at index i.
	At(i int) (any, error)
	// Set overwrites the element at index i.
	Set(i int, value any) error
	// Append adds elements to the end of the buffer.
	Append(values ...any)
	// Clear removes all elements, keeping capacity.
	Clear()
}

// Query is a handle over the set of entities carrying all of a query's
// component kinds. Results reflect store state at the time of the call.
type Query interface {
	Entities() []EntityID
	Count() int
}

// Store is the external component/buffer store consumed by the registry and
// the baking pipeline. Implementations must be safe for concurrent readers;
// all mutation driven by this library is serialized by its callers.
type Store interface {
	// CreateEntity allocates a fresh entity with no components.
	CreateEntity() (EntityID, error)
	// DestroyEntity removes the entity and everything attached to it.
	DestroyEntity(id EntityID) error
	// EntityExists reports whether id refers to a live entity.
	EntityExists(id EntityID) bool
	// EntityCount returns the number of live entities.
	EntityCount() int

	// HasComponent reports whether the entity carries a component of kind.
	HasComponent(id EntityID, kind Kind) bool
	// GetComponent returns the component of kind attached to the entity.
	GetComponent(id EntityID, kind Kind) (any, error)
	// SetComponent overwrites an existing component. The component must
	// already be present; use AddOrSetComponent to attach a new one.
	SetComponent(id EntityID, kind Kind, value any) error
	// AddOrSetComponent attaches the component if absent, else overwrites.
	AddOrSetComponent(id EntityID, kind Kind, value any) error

	// HasBuffer reports whether the entity carries a buffer of kind.
	HasBuffer(id EntityID, kind Kind) bool
	// GetBuffer returns the buffer of kind attached to the entity.
	GetBuffer(id EntityID, kind Kind) (Buffer, error)
	// AddBuffer attaches a new empty buffer of kind. capacityHint may be
	// used by the implementation to pre-size the sequence.
	AddBuffer(id EntityID, kind Kind, capacityHint int) (Buffer, error)

	// CreateQuery builds a query over entities carrying all given kinds.
	CreateQuery(kinds ...Kind) (Query, error)
}
