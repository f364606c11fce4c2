/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memstore provides the in-memory implementation of store.Store.
// It is the default backend: entity state is rebuilt each process run, so
// nothing here persists.
package memstore

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/suparena/entitybridge/store"
)

type record struct {
	components map[store.Kind]any
	buffers    map[store.Kind]*buffer
}

// Store is a thread-safe in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	entities map[store.EntityID]*record
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		entities: make(map[store.EntityID]*record),
	}
}

// CreateEntity allocates a fresh entity with no components.
func (s *Store) CreateEntity() (store.EntityID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := store.EntityID(uuid.New())
	s.entities[id] = &record{
		components: make(map[store.Kind]any),
		buffers:    make(map[store.Kind]*buffer),
	}
	return id, nil
}

// DestroyEntity removes the entity and everything attached to it.
func (s *Store) DestroyEntity(id store.EntityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entities[id]; !exists {
		return fmt.Errorf("entity %s not found", id)
	}
	delete(s.entities, id)
	return nil
}

// EntityExists reports whether id refers to a live entity.
func (s *Store) EntityExists(id store.EntityID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.entities[id]
	return exists
}

// EntityCount returns the number of live entities.
func (s *Store) EntityCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entities)
}

// HasComponent reports whether the entity carries a component of kind.
func (s *Store) HasComponent(id store.EntityID, kind store.Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.entities[id]
	if !exists {
		return false
	}
	_, ok := rec.components[kind]
	return ok
}

// GetComponent returns the component of kind attached to the entity.
func (s *Store) GetComponent(id store.EntityID, kind store.Kind) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.entities[id]
	if !exists {
		return nil, fmt.Errorf("entity %s not found", id)
	}
	v, ok := rec.components[kind]
	if !ok {
		return nil, fmt.Errorf("entity %s has no component of kind %s", id, kind)
	}
	return v, nil
}

// SetComponent overwrites an existing component. The component must already
// be present on the entity.
func (s *Store) SetComponent(id store.EntityID, kind store.Kind, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.entities[id]
	if !exists {
		return fmt.Errorf("entity %s not found", id)
	}
	if _, ok := rec.components[kind]; !ok {
		return fmt.Errorf("entity %s has no component of kind %s", id, kind)
	}
	rec.components[kind] = value
	return nil
}

// AddOrSetComponent attaches the component if absent, else overwrites it.
func (s *Store) AddOrSetComponent(id store.EntityID, kind store.Kind, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.entities[id]
	if !exists {
		return fmt.Errorf("entity %s not found", id)
	}
	rec.components[kind] = value
	return nil
}

// HasBuffer reports whether the entity carries a buffer of kind.
func (s *Store) HasBuffer(id store.EntityID, kind store.Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.entities[id]
	if !exists {
		return false
	}
	_, ok := rec.buffers[kind]
	return ok
}

// GetBuffer returns the buffer of kind attached to the entity.
func (s *Store) GetBuffer(id store.EntityID, kind store.Kind) (store.Buffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.entities[id]
	if !exists {
		return nil, fmt.Errorf("entity %s not found", id)
	}
	buf, ok := rec.buffers[kind]
	if !ok {
		return nil, fmt.Errorf("entity %s has no buffer of kind %s", id, kind)
	}
	return buf, nil
}

// AddBuffer attaches a new empty buffer of kind to the entity.
// Attaching over an existing buffer replaces it.
func (s *Store) AddBuffer(id store.EntityID, kind store.Kind, capacityHint int) (store.Buffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.entities[id]
	if !exists {
		return nil, fmt.Errorf("entity %s not found", id)
	}
	if capacityHint < 0 {
		capacityHint = 0
	}
	buf := &buffer{elems: make([]any, 0, capacityHint)}
	rec.buffers[kind] = buf
	return buf, nil
}

// CreateQuery builds a query over entities carrying all given kinds.
func (s *Store) CreateQuery(kinds ...store.Kind) (store.Query, error) {
	return &query{s: s, kinds: append([]store.Kind(nil), kinds...)}, nil
}
