/*
Package entitybridge bridges two lifecycles: externally-owned host objects
with their own creation and destruction events, and entities living in a
composable-component store.

The library maintains a synchronized, leak-free mapping between host objects
and entities, and dispatches type-specific transformation logic ("bakers")
that converts authoring data carried by a host object into canonical entity
components, exactly once per logical bake, with idempotent re-execution
("rebake").

Basic Usage:

	// Register bakers for the authoring types in play
	tbl := bake.NewTable()
	_ = bake.Add[HealthAuthoring](tbl, &HealthBaker{})

	// Build a world over the host runtime
	w := entitybridge.New(runtime,
	    entitybridge.WithBakers(tbl),
	    entitybridge.WithStartup(bootstrap.Config{Units: []string{"movement"}}),
	)

	// Boot: start processing units, run the initial full bake
	if err := w.Boot(); err != nil { ... }

	// After each aggregate context (scene) finishes loading
	w.ContextLoaded()

	// At shutdown
	w.Close()

Registered hosts carry a lifecycle sentinel: when the host runtime destroys
an object, its entity is unregistered and destroyed automatically. A failing
baker degrades only the entities it was responsible for; the rest of the
system keeps operating.

The component store and the host runtime are external collaborators,
consumed through the store and host packages. In-memory reference
implementations live in store/memstore and host/sim.
*/
package entitybridge
