/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "github.com/suparena/entitybridge/host"

// attachSentinel subscribes the registry to the host runtime's destruction
// notification for obj. The sentinel's sole contract: when the runtime
// destroys the object, unregister it.
//
// A sentinel is attached at most once per host, even across an
// unregister/re-register cycle; its callback outlives the mapping and relies
// on Unregister being a no-op for unmapped or torn-down state. This keeps
// mapping presence and sentinel presence established together: a mapped host
// always has its sentinel, and a sentinel without a mapping does nothing.
func (r *Registry) attachSentinel(obj host.Object) {
	obj.OnDestroy(func(h host.Object) {
		r.Unregister(h)
	})
}
