/*
Package registry maintains the synchronized, leak-free mapping between
externally-owned host objects and entities in the component store.

The Registry enforces a bijection: each host object owns at most one entity
and each entity is owned by exactly one host object. The entity side never
knows about the host; the back-reference lives only here.

Lifecycle:

	reg := registry.New(memstore.New())

	entity, _ := reg.Register(obj)   // creates entity + sentinel on first call
	entity, _ = reg.Register(obj)    // idempotent: same entity, no new state

	entity, err := reg.Resolve(obj)  // pure lookup, NotRegisteredError if unmapped

	reg.Unregister(obj)              // removes mapping, destroys entity; idempotent

Register attaches a lifecycle sentinel to the host on first registration:
when the host runtime destroys the object, the sentinel calls Unregister, so
entities cannot leak past their host. Unregister is also public and may be
called explicitly; the two paths are interchangeable and both idempotent.

Close signals global teardown. After Close the registry is inert: Register
returns store.Nil and Unregister no-ops, guarding against use-after-teardown
faults from destruction callbacks that fire late in process shutdown.

Generic accessors (Component, SetComponent, AddOrSetComponent, Buffer,
AddBuffer) resolve the host's entity and delegate straight to the store.
*/
package registry
