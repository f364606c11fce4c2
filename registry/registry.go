/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"

	eberrors "github.com/suparena/entitybridge/errors"
	"github.com/suparena/entitybridge/host"
	"github.com/suparena/entitybridge/store"
	"github.com/suparena/entitybridge/store/memstore"
)

// Registration is the pair binding a host object to its entity.
type Registration struct {
	Host         host.Object
	Entity       store.EntityID
	RegisteredAt strfmt.DateTime
}

// Registry maintains the bijective host-object to entity mapping. Each host
// maps to at most one entity and each entity is the target of exactly one
// registration. The registry exclusively owns the mapping; other components
// query it or call its mutating entry points, never touch it directly.
type Registry struct {
	mu         sync.RWMutex
	s          store.Store
	log        zerolog.Logger
	byHost     map[uint64]*Registration
	sentineled map[uint64]bool
	closed     bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New creates a Registry over the given store. A nil store is allowed; the
// registry lazily initializes an in-memory store on first Register.
func New(s store.Store, opts ...Option) *Registry {
	r := &Registry{
		s:          s,
		log:        zerolog.Nop(),
		byHost:     make(map[uint64]*Registration),
		sentineled: make(map[uint64]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store returns the backing store, initializing it lazily if needed.
func (r *Registry) Store() store.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.storeLocked()
}

func (r *Registry) storeLocked() store.Store {
	if r.s == nil {
		r.s = memstore.New()
		r.log.Debug().Msg("registry: lazily initialized in-memory store")
	}
	return r.s
}

// Register returns the entity owned by obj, creating it on first call.
// Repeated calls for the same host return the same entity and create
// nothing. The first registration for a host also attaches the lifecycle
// sentinel that unregisters the host when the runtime destroys it.
//
// After Close, Register is a silent no-op returning store.Nil: teardown
// ordering cannot be fully controlled by this library, so late callers are
// tolerated rather than faulted.
func (r *Registry) Register(obj host.Object) (store.EntityID, error) {
	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()
		return store.Nil, nil
	}

	if reg, ok := r.byHost[obj.ID()]; ok {
		r.mu.Unlock()
		return reg.Entity, nil
	}

	s := r.storeLocked()
	entity, err := s.CreateEntity()
	if err != nil {
		r.mu.Unlock()
		return store.Nil, err
	}

	r.byHost[obj.ID()] = &Registration{
		Host:         obj,
		Entity:       entity,
		RegisteredAt: strfmt.DateTime(time.Now().UTC()),
	}
	attach := !r.sentineled[obj.ID()]
	if attach {
		r.sentineled[obj.ID()] = true
	}
	r.mu.Unlock()

	// Attach outside the lock: the runtime may invoke destruction
	// callbacks synchronously for already-dead objects.
	if attach {
		r.attachSentinel(obj)
	}

	r.log.Debug().
		Uint64("host_id", obj.ID()).
		Str("host", obj.Name()).
		Str("entity", entity.String()).
		Msg("registered host object")
	return entity, nil
}

// Unregister removes the mapping for obj and destroys its entity if the
// store still holds it. Unmapped hosts and repeated calls are no-ops, as is
// any call after Close. Safe to invoke from destruction callbacks.
func (r *Registry) Unregister(obj host.Object) {
	r.mu.Lock()

	if r.closed {
		r.mu.Unlock()
		return
	}
	reg, ok := r.byHost[obj.ID()]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.byHost, obj.ID())
	s := r.s
	r.mu.Unlock()

	if s != nil && s.EntityExists(reg.Entity) {
		if err := s.DestroyEntity(reg.Entity); err != nil {
			r.log.Warn().
				Uint64("host_id", obj.ID()).
				Str("entity", reg.Entity.String()).
				Err(err).
				Msg("failed to destroy entity during unregister")
			return
		}
	}

	r.log.Debug().
		Uint64("host_id", obj.ID()).
		Str("host", obj.Name()).
		Str("entity", reg.Entity.String()).
		Msg("unregistered host object")
}

// Resolve returns the entity owned by obj. It never mutates; unmapped hosts
// yield a NotRegisteredError.
func (r *Registry) Resolve(obj host.Object) (store.EntityID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byHost[obj.ID()]
	if !ok {
		return store.Nil, eberrors.NewNotRegisteredError(obj.Name())
	}
	return reg.Entity, nil
}

// IsRegistered reports whether obj currently owns an entity.
func (r *Registry) IsRegistered(obj host.Object) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byHost[obj.ID()]
	return ok
}

// Registration returns a copy of the registration record for obj.
func (r *Registry) Registration(obj host.Object) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byHost[obj.ID()]
	if !ok {
		return Registration{}, eberrors.NewNotRegisteredError(obj.Name())
	}
	return *reg, nil
}

// Count returns the number of live registrations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byHost)
}

// Close signals global teardown. Subsequent Register calls return store.Nil
// and Unregister calls become no-ops, so destruction callbacks arriving
// during process shutdown cannot fault. Close does not destroy entities;
// the store's owner decides their fate.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.log.Debug().Int("registrations", len(r.byHost)).Msg("registry torn down")
}
