/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bake

import (
	"fmt"
	"sync"

	eberrors "github.com/suparena/entitybridge/errors"
	"github.com/suparena/entitybridge/store"
)

// binding is an erased baker bound to one authoring type.
type binding struct {
	authoring store.Kind
	bakerName string
	bake      func(ctx *Context, authoring any) error
}

// Table maps authoring types to bakers. Bakers register explicitly through
// Add; there is no runtime scanning. The table is built during startup and
// read-only thereafter, unless the caller rebuilds it with Reset followed by
// re-running its registration code.
type Table struct {
	mu       sync.RWMutex
	bindings map[store.Kind]binding
}

// NewTable creates an empty baker table.
func NewTable() *Table {
	return &Table{
		bindings: make(map[store.Kind]binding),
	}
}

// Add binds baker to authoring type T. Exactly one baker may claim a given
// authoring type: a second Add for the same T returns DuplicateBakerError
// and the first binding stays in force.
func Add[T any](t *Table, baker Baker[T]) error {
	kind := store.KindOf[T]()

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.bindings[kind]; exists {
		return eberrors.NewDuplicateBakerError(kind.String())
	}
	t.bindings[kind] = binding{
		authoring: kind,
		bakerName: fmt.Sprintf("%T", baker),
		bake: func(ctx *Context, authoring any) error {
			v, ok := authoring.(T)
			if !ok {
				return fmt.Errorf("authoring payload is %T, want %s", authoring, kind)
			}
			return baker.Bake(ctx, v)
		},
	}
	return nil
}

// lookup returns the binding for the exact authoring kind. There is no
// polymorphic matching against related authoring types.
func (t *Table) lookup(kind store.Kind) (binding, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b, ok := t.bindings[kind]
	return b, ok
}

// Has reports whether a baker is bound to the given authoring kind.
func (t *Table) Has(kind store.Kind) bool {
	_, ok := t.lookup(kind)
	return ok
}

// Len returns the number of bound authoring types.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.bindings)
}

// Kinds returns the bound authoring kinds, in no particular order.
func (t *Table) Kinds() []store.Kind {
	t.mu.RLock()
	defer t.mu.RUnlock()

	kinds := make([]store.Kind, 0, len(t.bindings))
	for kind := range t.bindings {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Reset clears every binding. Callers that need a rebuild re-run their
// registration code afterwards; nothing triggers that automatically.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.bindings = make(map[store.Kind]binding)
}
