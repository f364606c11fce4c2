/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotRegistered is returned when a host object has no entity mapping
	ErrNotRegistered = errors.New("host object not registered")

	// ErrBakeFailed is returned when user baker logic fails for one object
	ErrBakeFailed = errors.New("bake failed")

	// ErrDuplicateBaker is returned when a second baker claims an authoring type
	ErrDuplicateBaker = errors.New("baker already registered for authoring type")

	// ErrTornDown is returned by operations attempted after global teardown
	ErrTornDown = errors.New("registry torn down")

	// ErrStoreUnavailable is returned when no entity store has been configured
	ErrStoreUnavailable = errors.New("entity store unavailable")
)

// NotRegisteredError represents a lookup against a host object with no mapping
type NotRegisteredError struct {
	Host string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("host object %q is not registered", e.Host)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// BakeError wraps a failure raised by user transformation logic.
// It carries the authoring type and the host identity so a single bad baker
// can be diagnosed without aborting the surrounding batch.
type BakeError struct {
	AuthoringType string
	Host          string
	Err           error
}

func (e *BakeError) Error() string {
	return fmt.Sprintf("baking %s on host %q failed: %v", e.AuthoringType, e.Host, e.Err)
}

func (e *BakeError) Is(target error) bool {
	return target == ErrBakeFailed
}

func (e *BakeError) Unwrap() error {
	return e.Err
}

// DuplicateBakerError represents a collision on an authoring type.
// The first registered baker stays bound; the rejected registration is
// reported through this error.
type DuplicateBakerError struct {
	AuthoringType string
}

func (e *DuplicateBakerError) Error() string {
	return fmt.Sprintf("baker for authoring type %s already registered", e.AuthoringType)
}

func (e *DuplicateBakerError) Is(target error) bool {
	return target == ErrDuplicateBaker
}

// Helper functions for creating errors

// NewNotRegisteredError creates a new NotRegisteredError
func NewNotRegisteredError(host string) error {
	return &NotRegisteredError{Host: host}
}

// NewBakeError creates a new BakeError
func NewBakeError(authoringType, host string, err error) error {
	return &BakeError{AuthoringType: authoringType, Host: host, Err: err}
}

// NewDuplicateBakerError creates a new DuplicateBakerError
func NewDuplicateBakerError(authoringType string) error {
	return &DuplicateBakerError{AuthoringType: authoringType}
}

// IsNotRegistered checks if an error is a not registered error
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}

// IsBakeFailed checks if an error is a bake failure
func IsBakeFailed(err error) bool {
	return errors.Is(err, ErrBakeFailed)
}

// IsDuplicateBaker checks if an error is a duplicate baker error
func IsDuplicateBaker(err error) bool {
	return errors.Is(err, ErrDuplicateBaker)
}

// IsTornDown checks if an error indicates the registry has been torn down
func IsTornDown(err error) bool {
	return errors.Is(err, ErrTornDown)
}
