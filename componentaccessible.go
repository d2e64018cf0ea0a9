package depot

// AccessibleComponent extends a base Component with typed access to slots
// It provides methods to view component values through different access patterns
type AccessibleComponent[T any] struct {
	Component
}

// Ref is a typed shared view.
type Ref[T any] struct {
	view *View
	ptr  *T
}

// Value returns a copy of the component value
func (r Ref[T]) Value() T {
	return *r.ptr
}

func (r Ref[T]) Release() {
	r.view.Release()
}

// RefMut is a typed exclusive view.
type RefMut[T any] struct {
	view *MutView
	ptr  *T
}

// Ptr returns the component value for in-place mutation; do not retain it past Release
func (r RefMut[T]) Ptr() *T {
	return r.ptr
}

func (r RefMut[T]) Release() {
	r.view.Release()
}

// Get takes a shared view of the slot, checking that it holds a T
func (c AccessibleComponent[T]) Get(slot *Slot) (Ref[T], error) {
	if err := c.check(slot); err != nil {
		return Ref[T]{}, err
	}
	view := slot.Read()
	return Ref[T]{view: view, ptr: slot.ptr.Interface().(*T)}, nil
}

// GetMut takes an exclusive view of the slot, checking that it holds a T
func (c AccessibleComponent[T]) GetMut(slot *Slot) (RefMut[T], error) {
	if err := c.check(slot); err != nil {
		return RefMut[T]{}, err
	}
	view := slot.Write()
	return RefMut[T]{view: view, ptr: slot.ptr.Interface().(*T)}, nil
}

// GetFromEntity takes a shared view of the entity's value for this component
func (c AccessibleComponent[T]) GetFromEntity(sto Storage, en Entity) (Ref[T], error) {
	slot, err := sto.Slot(en, c)
	if err != nil {
		return Ref[T]{}, err
	}
	return c.Get(slot)
}

// GetMutFromEntity takes an exclusive view of the entity's value for this component
func (c AccessibleComponent[T]) GetMutFromEntity(sto Storage, en Entity) (RefMut[T], error) {
	slot, err := sto.Slot(en, c)
	if err != nil {
		return RefMut[T]{}, err
	}
	return c.GetMut(slot)
}

// GetFromCursor takes a shared view of the value for the entity at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) (Ref[T], error) {
	return c.GetFromEntity(cursor.storage, cursor.CurrentEntity())
}

// GetMutFromCursor takes an exclusive view of the value for the entity at the cursor position
func (c AccessibleComponent[T]) GetMutFromCursor(cursor *Cursor) (RefMut[T], error) {
	return c.GetMutFromEntity(cursor.storage, cursor.CurrentEntity())
}

// Values copies the group of this component out of a query result
func (c AccessibleComponent[T]) Values(result Result) ([]T, error) {
	group, ok := result.Group(c)
	if !ok {
		return nil, ComponentNotFoundError{Component: c}
	}
	values := make([]T, 0, len(group))
	for _, slot := range group {
		ref, err := c.Get(slot)
		if err != nil {
			return nil, err
		}
		values = append(values, ref.Value())
		ref.Release()
	}
	return values, nil
}

func (c AccessibleComponent[T]) check(slot *Slot) error {
	if slot == nil {
		return ComponentNotFoundError{Component: c}
	}
	if slot.typ != c.Type() {
		return ComponentTypeMismatchError{Want: c.Type(), Got: slot.typ}
	}
	return nil
}
