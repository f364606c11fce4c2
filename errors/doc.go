/*
Package errors provides semantic error types for the EntityBridge library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotRegistered    = errors.New("host object not registered")
	    ErrBakeFailed       = errors.New("bake failed")
	    ErrDuplicateBaker   = errors.New("baker already registered for authoring type")
	    ErrTornDown         = errors.New("registry torn down")
	    ErrStoreUnavailable = errors.New("entity store unavailable")
	)

Usage:

	// Check error type
	entity, err := reg.Resolve(obj)
	if err != nil {
	    if errors.IsNotRegistered(err) {
	        // Host has not been baked yet
	        return nil
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotRegisteredError("Player")
	err := errors.NewBakeError("HealthAuthoring", "Player", cause)
	err := errors.NewDuplicateBakerError("HealthAuthoring")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
