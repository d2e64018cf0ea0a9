package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// Component identifies a component type. Values of the type are attached to
// entities; the Component itself is used to register, require and read them.
type Component interface {
	table.ElementType
	Name() string
}

// Named may be implemented by component value types to choose the name a
// component is looked up by. Otherwise the Go type name is used.
type Named interface {
	Name() string
}

var _ Component = componentType{}

type componentType struct {
	table.ElementType
	name string
}

func newComponentType[T any]() componentType {
	var zero T
	iden := table.FactoryNewElementType[T]()
	return componentType{ElementType: iden, name: componentName(iden.Type(), any(zero))}
}

func componentName(typ reflect.Type, zero any) string {
	if named, ok := zero.(Named); ok {
		return named.Name()
	}
	if typ == nil {
		return "nil"
	}
	if typ.Name() != "" {
		return typ.Name()
	}
	return typ.String()
}

func (c componentType) Name() string {
	return c.name
}
