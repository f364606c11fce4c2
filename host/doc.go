/*
Package host defines the contract EntityBridge consumes from the host
runtime that owns the objects being baked.

The runtime is an external collaborator. EntityBridge needs exactly four
capabilities from it:

  - object identity and equality (Object.ID)
  - enumeration of live objects (Runtime.Objects)
  - ancestry traversal with a marker probe (Parent, HasMarker, and the
    NearestAncestorWithMarker / AncestryHasMarker helpers)
  - destruction notification (Object.OnDestroy), which the registry uses to
    attach its lifecycle sentinel

Any runtime satisfying these interfaces can drive the pipeline. The sim
subpackage provides a self-contained in-memory runtime for tests and for
embedding EntityBridge without a real host environment.
*/
package host
