/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bake

import (
	"testing"

	eberrors "github.com/suparena/entitybridge/errors"
	"github.com/suparena/entitybridge/store"
)

type speedAuthoring struct {
	V float64
}

type speedBaker struct{ tag string }

func (b *speedBaker) Bake(ctx *Context, a speedAuthoring) error { return nil }

// Baker reached through an embedding chain: the Bake method is promoted
// from a base two levels down.
type speedBakerBase struct{}

func (speedBakerBase) Bake(ctx *Context, a speedAuthoring) error { return nil }

type midBaker struct{ speedBakerBase }

type leafBaker struct{ midBaker }

func TestTableAdd(t *testing.T) {
	tbl := NewTable()

	if err := Add[speedAuthoring](tbl, &speedBaker{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Expected 1 binding, got %d", tbl.Len())
	}
	if !tbl.Has(store.KindOf[speedAuthoring]()) {
		t.Error("table should have a binding for speedAuthoring")
	}

	kinds := tbl.Kinds()
	if len(kinds) != 1 || kinds[0] != store.KindOf[speedAuthoring]() {
		t.Errorf("Kinds returned %v", kinds)
	}
}

func TestTableAddCollisionKeepsFirst(t *testing.T) {
	tbl := NewTable()

	first := &speedBaker{tag: "first"}
	if err := Add[speedAuthoring](tbl, first); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := Add[speedAuthoring](tbl, &speedBaker{tag: "second"})
	if !eberrors.IsDuplicateBaker(err) {
		t.Errorf("Expected DuplicateBakerError, got %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Collision should not add a binding, got %d", tbl.Len())
	}

	bnd, ok := tbl.lookup(store.KindOf[speedAuthoring]())
	if !ok {
		t.Fatal("binding should still exist after collision")
	}
	// The first baker stays bound
	if bnd.bakerName != "*bake.speedBaker" {
		t.Errorf("unexpected baker name %q", bnd.bakerName)
	}
	if err := bnd.bake(&Context{}, speedAuthoring{}); err != nil {
		t.Errorf("first binding should still invoke cleanly, got %v", err)
	}
}

func TestTableAddBakerThroughEmbedding(t *testing.T) {
	tbl := NewTable()

	// leafBaker only has Bake via promotion across two embedding levels
	if err := Add[speedAuthoring](tbl, leafBaker{}); err != nil {
		t.Fatalf("Add of embedded baker failed: %v", err)
	}
	bnd, ok := tbl.lookup(store.KindOf[speedAuthoring]())
	if !ok {
		t.Fatal("embedded baker should be bound to its authoring type")
	}
	if err := bnd.bake(&Context{}, speedAuthoring{V: 1}); err != nil {
		t.Errorf("embedded baker invocation failed: %v", err)
	}
}

func TestTableExactTypeOnly(t *testing.T) {
	type otherAuthoring struct {
		V float64 // same shape as speedAuthoring, different type
	}

	tbl := NewTable()
	_ = Add[speedAuthoring](tbl, &speedBaker{})

	if tbl.Has(store.KindOf[otherAuthoring]()) {
		t.Error("lookup must match the exact authoring type only")
	}
	if tbl.Has(store.KindOf[*speedAuthoring]()) {
		t.Error("pointer and value authoring types are distinct")
	}
}

func TestTableReset(t *testing.T) {
	tbl := NewTable()
	_ = Add[speedAuthoring](tbl, &speedBaker{})

	tbl.Reset()
	if tbl.Len() != 0 {
		t.Errorf("Expected empty table after Reset, got %d", tbl.Len())
	}

	// Rebuild is the caller's job and succeeds after Reset
	if err := Add[speedAuthoring](tbl, &speedBaker{}); err != nil {
		t.Errorf("re-registration after Reset failed: %v", err)
	}
}

func TestTableRejectsWrongPayloadType(t *testing.T) {
	tbl := NewTable()
	_ = Add[speedAuthoring](tbl, &speedBaker{})

	bnd, _ := tbl.lookup(store.KindOf[speedAuthoring]())
	if err := bnd.bake(&Context{}, "not a speedAuthoring"); err == nil {
		t.Error("binding should reject a payload of the wrong type")
	}
}
