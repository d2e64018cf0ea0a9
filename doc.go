/*
Package depot provides a columnar entity-component store.

Every registered component type owns a column with one slot per entity, and every
entity owns a membership mask recording which of its slots hold a value. Queries
accumulate a mask from the component types they require and return, per type, the
slots of the entities whose membership contains it.

Core Concepts:

  - Component: A registered data type. The n-th registered type gets Bit 1<<n.
  - Entity: An index shared by every column. Entities are only ever appended.
  - Slot: A populated column element, read through shared or exclusive views.
  - Query: A conjunctive filter over component presence.
  - Result: One group of slots per required component, aligned by position.

Basic Usage:

	storage := depot.Factory.NewStorage()

	location := depot.FactoryNewComponent[Location]()
	size := depot.FactoryNewComponent[Size]()
	if err := storage.Register(location, size); err != nil {
		return err
	}

	_, err := storage.NewEntity().With(Location{42, 24}, Size{10}).Entity()
	if err != nil {
		return err
	}

	result, err := storage.Query().With(location, size).Run()
	if err != nil {
		return err
	}
	locations, _ := location.Values(result)

Slots handed out by a query are the storage's own slots, not copies. Holding an
exclusive view of a slot together with any other view of it panics with
BorrowError.

Nothing in this package is safe for concurrent use.
*/
package depot
