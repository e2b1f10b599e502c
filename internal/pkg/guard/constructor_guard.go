// Package guard provides the constructor guard pattern used by domain
// value objects and commands to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embedding a guard in a struct and calling
// Validate before use prevents bypassing constructor validation by direct
// struct initialization.
//
// Example usage:
//
//	type Sample struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSample(value int) Sample {
//	    return Sample{value: value, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Sample) Validate() error {
//	    return s.guard.Validate(ErrSampleIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// the supplied validationError otherwise. A nil validationError falls back
// to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
