// Package guard provides the ConstructorGuard pattern used by value objects,
// entities and commands to ensure they are only created through their
// designated constructor functions. A zero-value struct carries a zero-value
// guard and fails validation, which prevents accidental use of objects that
// bypassed construction-time invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. Validation of a zero-value guard always fails with
// a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and set it via NewConstructorGuard inside the constructor; the
// zero value of the guard is invalid.
//
// Example:
//
//	type Address struct {
//	    city  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddress(city string) (Address, error) {
//	    if city == "" {
//	        return Address{}, errors.New("city is required")
//	    }
//	    return Address{city: city, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
