package depot

// Entity is a slot index shared by every column. Entities are never removed,
// so an Entity stays valid for the life of its storage.
type Entity int

// EntityBuilder attaches components to one entity. The first error sticks:
// later With calls do nothing and Err or Entity report it.
type EntityBuilder struct {
	sto    *storage
	entity Entity
	err    error
}

// With attaches each value to the entity in order, replacing any value of the
// same type it already carries.
func (b *EntityBuilder) With(values ...any) *EntityBuilder {
	for _, value := range values {
		if b.err != nil {
			return b
		}
		if b.sto.locked {
			b.err = LockedStorageError{}
			return b
		}
		b.err = b.sto.attach(b.entity, value)
	}
	return b
}

func (b *EntityBuilder) Err() error {
	return b.err
}

// Entity returns the entity being built, or the first error hit while building it.
func (b *EntityBuilder) Entity() (Entity, error) {
	if b.err != nil {
		return -1, b.err
	}
	return b.entity, nil
}
