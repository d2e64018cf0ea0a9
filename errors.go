package depot

import (
	"fmt"
	"reflect"
)

type TypeNotRegisteredError struct {
	Type reflect.Type
}

func (e TypeNotRegisteredError) Error() string {
	return fmt.Sprintf("component type is not registered: %v", e.Type)
}

type NoEntityCreatedError struct{}

func (e NoEntityCreatedError) Error() string {
	return "no entity has been created yet"
}

type TooManyComponentTypesError struct {
	Limit int
}

func (e TooManyComponentTypesError) Error() string {
	return fmt.Sprintf("component type capacity exhausted (%d)", e.Limit)
}

type ComponentRegisteredError struct {
	Type reflect.Type
}

func (e ComponentRegisteredError) Error() string {
	return fmt.Sprintf("component type already registered: %v", e.Type)
}

// LateRegistrationError is returned when registration after entity creation is
// rejected by Config.
type LateRegistrationError struct {
	Type     reflect.Type
	Entities int
}

func (e LateRegistrationError) Error() string {
	return fmt.Sprintf("cannot register %v: %d entities already exist", e.Type, e.Entities)
}

type EntityOutOfRangeError struct {
	Entity Entity
	Len    int
}

func (e EntityOutOfRangeError) Error() string {
	return fmt.Sprintf("entity %d out of range (len %d)", e.Entity, e.Len)
}

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type ComponentTypeMismatchError struct {
	Want, Got reflect.Type
}

func (e ComponentTypeMismatchError) Error() string {
	return fmt.Sprintf("slot holds %v, not %v", e.Got, e.Want)
}

type UnknownComponentNameError struct {
	Name string
}

func (e UnknownComponentNameError) Error() string {
	return fmt.Sprintf("no component registered under name %q", e.Name)
}

// BorrowError is the panic value raised when a slot's shared/exclusive view
// discipline is violated. It is never returned.
type BorrowError struct {
	Type      reflect.Type
	Readers   int
	Writing   bool
	Exclusive bool
}

func (e BorrowError) Error() string {
	kind := "shared"
	if e.Exclusive {
		kind = "exclusive"
	}
	return fmt.Sprintf("cannot take %s view of %v: %d readers, writer held: %v", kind, e.Type, e.Readers, e.Writing)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %s", e.Component.Name())
}
