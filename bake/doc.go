/*
Package bake discovers and dispatches the transformation logic that converts
authoring data carried by host objects into canonical entity components.

A Baker[T] claims one authoring type T. Bakers register explicitly on a
Table during startup:

	tbl := bake.NewTable()
	if err := bake.Add[HealthAuthoring](tbl, &HealthBaker{}); err != nil {
	    // second baker claiming HealthAuthoring: first stays bound
	}

Lookup is by the exact runtime type of the payload, never by assignability,
so a baker for one authoring type is not invoked for related types.

The Dispatcher runs bakers. BakeOne handles a single payload: it registers
the host with the entity registry (computing IsRebake from whether the host
was already registered) and invokes the bound baker with a transient
Context. BakeAll sweeps every live host object, skipping subtrees marked
ExternallyManaged. A baker that errors or panics degrades only its own
object: the failure is logged and the sweep continues.

Rebake semantics belong to bakers. The Context exposes IsRebake; whether
existing entity state is reset or merged is the baker's decision.
*/
package bake
