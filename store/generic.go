/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import "fmt"

// Type-safe accessors over the erased Store interface. Component kinds are
// derived from the type argument, so call sites never spell a reflect.Type.

// HasComponent reports whether the entity carries a component of type K.
func HasComponent[K any](s Store, id EntityID) bool {
	return s.HasComponent(id, KindOf[K]())
}

// GetComponent returns the component of type K attached to the entity.
func GetComponent[K any](s Store, id EntityID) (K, error) {
	var zero K
	v, err := s.GetComponent(id, KindOf[K]())
	if err != nil {
		return zero, err
	}
	k, ok := v.(K)
	if !ok {
		return zero, fmt.Errorf("component of kind %s holds unexpected value %T", KindOf[K](), v)
	}
	return k, nil
}

// SetComponent overwrites an existing component of type K on the entity.
func SetComponent[K any](s Store, id EntityID, value K) error {
	return s.SetComponent(id, KindOf[K](), value)
}

// AddOrSetComponent attaches the component if absent, else overwrites it.
func AddOrSetComponent[K any](s Store, id EntityID, value K) error {
	return s.AddOrSetComponent(id, KindOf[K](), value)
}

// HasBuffer reports whether the entity carries a buffer with element type K.
func HasBuffer[K any](s Store, id EntityID) bool {
	return s.HasBuffer(id, KindOf[K]())
}

// GetBuffer returns the buffer with element type K attached to the entity.
func GetBuffer[K any](s Store, id EntityID) (Buffer, error) {
	return s.GetBuffer(id, KindOf[K]())
}

// AddBuffer attaches a new empty buffer with element type K to the entity.
func AddBuffer[K any](s Store, id EntityID, capacityHint int) (Buffer, error) {
	return s.AddBuffer(id, KindOf[K](), capacityHint)
}
