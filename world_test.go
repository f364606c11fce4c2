/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitybridge

import (
	"testing"

	"github.com/suparena/entitybridge/bake"
	"github.com/suparena/entitybridge/bootstrap"
	"github.com/suparena/entitybridge/host/sim"
	"github.com/suparena/entitybridge/store"
)

// HealthAuthoring is user-authored input carried by a host object.
type HealthAuthoring struct {
	MaxHealth int
}

// Health is the canonical component baked from HealthAuthoring.
type Health struct {
	Current, Max int
}

// healthBaker fills Current to Max on first bake and preserves Current on
// rebake, only updating Max.
type healthBaker struct{}

func (healthBaker) Bake(ctx *bake.Context, a *HealthAuthoring) error {
	if !ctx.IsRebake {
		return store.AddOrSetComponent(ctx.Store, ctx.Entity, Health{
			Current: a.MaxHealth,
			Max:     a.MaxHealth,
		})
	}
	h, err := store.GetComponent[Health](ctx.Store, ctx.Entity)
	if err != nil {
		// Nothing to merge with; treat as a fresh bake
		return store.AddOrSetComponent(ctx.Store, ctx.Entity, Health{
			Current: a.MaxHealth,
			Max:     a.MaxHealth,
		})
	}
	h.Max = a.MaxHealth
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return store.SetComponent(ctx.Store, ctx.Entity, h)
}

// healthQueryUnit is a processing unit that queries Health entities.
type healthQueryUnit struct {
	query store.Query
}

func (u *healthQueryUnit) Name() string { return "health-query" }

func (u *healthQueryUnit) Start(env bootstrap.Env) error {
	q, err := env.Store.CreateQuery(store.KindOf[Health]())
	if err != nil {
		return err
	}
	u.query = q
	return nil
}

func TestHealthBakeAndRebake(t *testing.T) {
	tbl := bake.NewTable()
	if err := bake.Add[*HealthAuthoring](tbl, healthBaker{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	rt := sim.New()
	authoring := &HealthAuthoring{MaxHealth: 100}
	h1 := rt.NewObject("H1", sim.WithAuthoring(authoring))

	w := New(rt, WithBakers(tbl))
	if err := w.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	e1, err := w.Registry().Resolve(h1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	got, err := store.GetComponent[Health](w.Store(), e1)
	if err != nil {
		t.Fatalf("GetComponent failed: %v", err)
	}
	if got != (Health{Current: 100, Max: 100}) {
		t.Errorf("Expected Health{100 100}, got %+v", got)
	}
	if w.Store().EntityCount() != 1 {
		t.Errorf("Expected 1 entity, got %d", w.Store().EntityCount())
	}

	// Rebake with raised max: Current is preserved by the baker's merge
	authoring.MaxHealth = 150
	w.ContextLoaded()

	e2, _ := w.Registry().Resolve(h1)
	if e2 != e1 {
		t.Error("rebake should reuse the existing entity")
	}
	got, _ = store.GetComponent[Health](w.Store(), e1)
	if got != (Health{Current: 100, Max: 150}) {
		t.Errorf("Expected Health{100 150} after rebake, got %+v", got)
	}
	if w.Store().EntityCount() != 1 {
		t.Errorf("Entity count should stay 1 across rebakes, got %d", w.Store().EntityCount())
	}
}

func TestBootStartsUnitsAndBakes(t *testing.T) {
	tbl := bake.NewTable()
	_ = bake.Add[*HealthAuthoring](tbl, healthBaker{})

	units := bootstrap.NewRunner()
	unit := &healthQueryUnit{}
	_ = units.RegisterFactory("health-query", func() bootstrap.Unit { return unit })

	rt := sim.New()
	rt.NewObject("H1", sim.WithAuthoring(&HealthAuthoring{MaxHealth: 10}))
	rt.NewObject("H2", sim.WithAuthoring(&HealthAuthoring{MaxHealth: 20}))
	rt.NewObject("bare") // no authoring: enumerated but never baked

	w := New(rt,
		WithBakers(tbl),
		WithUnits(units),
		WithStartup(bootstrap.Config{Units: []string{"health-query"}}),
	)
	if err := w.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	if _, ok := w.Units().Unit("health-query"); !ok {
		t.Error("startup list unit should be running after Boot")
	}
	if unit.query == nil {
		t.Fatal("unit should have built its query on Start")
	}
	if unit.query.Count() != 2 {
		t.Errorf("Expected 2 Health entities visible to the unit, got %d", unit.query.Count())
	}

	// Boot is one-shot
	if err := w.Boot(); err != nil {
		t.Fatalf("second Boot failed: %v", err)
	}
	if w.Store().EntityCount() != 2 {
		t.Errorf("second Boot should bake nothing new, got %d entities", w.Store().EntityCount())
	}
}

func TestHostDestructionCleansUpThroughWorld(t *testing.T) {
	tbl := bake.NewTable()
	_ = bake.Add[*HealthAuthoring](tbl, healthBaker{})

	rt := sim.New()
	obj := rt.NewObject("H1", sim.WithAuthoring(&HealthAuthoring{MaxHealth: 5}))

	w := New(rt, WithBakers(tbl))
	if err := w.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if w.Store().EntityCount() != 1 {
		t.Fatalf("Expected 1 entity, got %d", w.Store().EntityCount())
	}

	obj.Destroy()
	if w.Store().EntityCount() != 0 {
		t.Errorf("host destruction should destroy its entity, got %d", w.Store().EntityCount())
	}

	// A context load after the destruction finds nothing to bake
	w.ContextLoaded()
	if w.Store().EntityCount() != 0 {
		t.Errorf("destroyed host should not be rebaked, got %d entities", w.Store().EntityCount())
	}
}

func TestWorldClose(t *testing.T) {
	tbl := bake.NewTable()
	_ = bake.Add[*HealthAuthoring](tbl, healthBaker{})

	rt := sim.New()
	obj := rt.NewObject("H1", sim.WithAuthoring(&HealthAuthoring{MaxHealth: 5}))

	w := New(rt, WithBakers(tbl))
	_ = w.Boot()
	w.Close()

	// Destruction callbacks after teardown are inert
	obj.Destroy()
	if w.Store().EntityCount() != 1 {
		t.Errorf("teardown should leave store contents alone, got %d", w.Store().EntityCount())
	}

	// Context loads after teardown bake nothing
	rt.NewObject("late", sim.WithAuthoring(&HealthAuthoring{MaxHealth: 5}))
	w.ContextLoaded()
	if w.Store().EntityCount() != 1 {
		t.Errorf("no new entities after teardown, got %d", w.Store().EntityCount())
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("version should not be empty")
	}
}
