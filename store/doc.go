/*
Package store defines the contract for the external component/buffer store
consumed by EntityBridge.

The main interface is Store, an erased surface keyed by component Kind
(a reflect.Type). Package-level generic accessors provide the type-safe view:

	id, _ := s.CreateEntity()
	_ = store.AddOrSetComponent(s, id, Health{Current: 100, Max: 100})
	h, _ := store.GetComponent[Health](s, id)
	ok := store.HasComponent[Health](s, id)

Entities also carry growable element sequences ("buffers"), at most one per
element kind:

	buf, _ := store.AddBuffer[Waypoint](s, id, 8)
	buf.Append(Waypoint{X: 1}, Waypoint{X: 2})

Implementations:
  - memstore: in-memory implementation, the default backend

The package uses Go generics to ensure type safety at compile time while
keeping the Store interface itself free of type parameters, so heterogeneous
component kinds can flow through one store value.
*/
package store
