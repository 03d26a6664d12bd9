// Package guard helps domain types detect zero values that bypassed their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a
// struct, set it with NewConstructorGuard inside the constructor and call
// Validate from the struct's own Validate method:
//
//	type Destination struct {
//	    country string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (d Destination) Validate() error {
//	    return d.guard.Validate(ErrDestinationIsNotConstructed)
//	}
//
// A zero-value struct carries a zero-value guard, which fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
