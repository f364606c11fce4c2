/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memstore

import (
	"fmt"
	"sync"

	"github.com/suparena/entitybridge/store"
)

// buffer is the in-memory store.Buffer implementation.
type buffer struct {
	mu    sync.RWMutex
	elems []any
}

func (b *buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.elems)
}

func (b *buffer) At(i int) (any, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.elems) {
		return nil, fmt.Errorf("buffer index %d out of range [0,%d)", i, len(b.elems))
	}
	return b.elems[i], nil
}

func (b *buffer) Set(i int, value any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.elems) {
		return fmt.Errorf("buffer index %d out of range [0,%d)", i, len(b.elems))
	}
	b.elems[i] = value
	return nil
}

func (b *buffer) Append(values ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.elems = append(b.elems, values...)
}

func (b *buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.elems = b.elems[:0]
}

// query matches entities carrying every one of its kinds, component kinds
// and buffer kinds alike. Results are computed per call.
type query struct {
	s     *Store
	kinds []store.Kind
}

func (q *query) Entities() []store.EntityID {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()

	var out []store.EntityID
	for id, rec := range q.s.entities {
		matched := true
		for _, kind := range q.kinds {
			if _, ok := rec.components[kind]; ok {
				continue
			}
			if _, ok := rec.buffers[kind]; ok {
				continue
			}
			matched = false
			break
		}
		if matched {
			out = append(out, id)
		}
	}
	return out
}

func (q *query) Count() int {
	return len(q.Entities())
}
