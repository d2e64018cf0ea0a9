package depot

type factory struct{}

var Factory factory

func (f factory) NewStorage() Storage {
	return newStorage()
}

// NewCursor iterates the matches of a query built by a Storage's Query method.
func (f factory) NewCursor(query Query) *Cursor {
	return newCursor(query)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: newComponentType[T](),
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
