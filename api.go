package depot

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

type Storage interface {
	Register(...Component) error
	BitOf(Component) (Bit, error)
	Components() []Component
	ComponentByName(string) (Component, error)
	NewEntity() *EntityBuilder
	Attach(value any) error
	EnqueueNewEntity(values ...any) (Entity, error)
	EnqueueAttach(Entity, any) error
	Membership(Entity) (mask.Mask, error)
	Has(Entity, Component) (bool, error)
	Slot(Entity, Component) (*Slot, error)
	Len() int
	Query() Query
	Locked() bool
	Lock()
	Unlock()
}

type Query interface {
	With(components ...Component) Query
	Run() (Result, error)
	Evaluate(membership mask.Mask) bool
	Mask() mask.Mask
	Components() []Component
	Err() error
}

type iCursor interface {
	Entities() iter.Seq2[int, Entity]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	Register(string, T) (int, error)
	Len() int
}

// Warning: internal Dependencies abound!
type Cursor struct {
	// The query to filter entities
	query *query

	// The storage to iterate over
	storage *storage

	// Current iteration state
	matched  []Entity
	position int

	// Initialization state
	initialized bool
	locked      bool
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
