package depot

import (
	"iter"
	"math/bits"
	"reflect"
)

// MaxComponentTypes is the number of distinct component types one storage can
// register; it is the width of Bit.
const MaxComponentTypes = 32

// Bit is the single-bit mask assigned to a registered component type. The
// n-th registered type gets 1<<n.
type Bit uint32

// Index returns the bit position.
func (b Bit) Index() uint32 {
	return uint32(bits.TrailingZeros32(uint32(b)))
}

type registration struct {
	component Component
	bit       Bit
}

// registry assigns bits in registration order. Values are matched to their
// column by reflect.Type; names resolve through a first-wins cache.
type registry struct {
	registrations []registration
	byType        map[reflect.Type]int
	byName        Cache[int]
}

func newRegistry() *registry {
	return &registry{
		byType: make(map[reflect.Type]int, MaxComponentTypes),
		byName: FactoryNewCache[int](MaxComponentTypes),
	}
}

func (r *registry) register(c Component) (registration, error) {
	if _, found := r.byType[c.Type()]; found {
		return registration{}, ComponentRegisteredError{Type: c.Type()}
	}
	if len(r.registrations) >= MaxComponentTypes {
		return registration{}, TooManyComponentTypesError{Limit: MaxComponentTypes}
	}
	idx := len(r.registrations)
	reg := registration{component: c, bit: Bit(1) << uint32(idx)}
	r.registrations = append(r.registrations, reg)
	r.byType[c.Type()] = idx
	// A name already taken keeps pointing at the first component registered under it
	_, _ = r.byName.Register(c.Name(), idx)
	return reg, nil
}

func (r *registry) lookup(typ reflect.Type) (int, bool) {
	if typ == nil {
		return -1, false
	}
	idx, ok := r.byType[typ]
	return idx, ok
}

func (r *registry) lookupName(name string) (int, bool) {
	nameIdx, ok := r.byName.GetIndex(name)
	if !ok {
		return -1, false
	}
	return *r.byName.GetItem(nameIdx), true
}

func (r *registry) at(idx int) registration {
	return r.registrations[idx]
}

func (r *registry) components() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, reg := range r.registrations {
			if !yield(reg.component) {
				return
			}
		}
	}
}
