package depot

import (
	"iter"
)

var _ iCursor = &Cursor{}

func newCursor(q Query) *Cursor {
	concrete := q.(*query)
	return &Cursor{
		query:   concrete,
		storage: concrete.sto,
	}
}

// Next advances to the next matching entity. The storage stays locked from the
// first call until Next returns false or Reset is called.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.position < len(c.matched) {
		c.position++
		return true
	}
	c.Reset()
	return false
}

func (c *Cursor) Entities() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		c.initialize()
		defer c.Reset()

		for c.position < len(c.matched) {
			c.position++
			if !yield(c.position-1, c.matched[c.position-1]) {
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matched = c.collect(c.matched[:0])
	c.position = 0
	if !c.storage.Locked() {
		c.storage.Lock()
		c.locked = true
	}
	c.initialized = true
}

// Reset rewinds the cursor and unlocks the storage if the cursor locked it.
func (c *Cursor) Reset() {
	c.position = 0
	c.initialized = false
	if c.locked {
		c.locked = false
		c.storage.Unlock()
	}
}

// CurrentEntity returns the entity the last call to Next moved to
func (c *Cursor) CurrentEntity() Entity {
	if c.position == 0 {
		return -1
	}
	return c.matched[c.position-1]
}

func (c *Cursor) Remaining() int {
	return len(c.matched) - c.position
}

func (c *Cursor) collect(dst []Entity) []Entity {
	if c.query.err != nil {
		return dst
	}
	for i, membership := range c.storage.membership {
		if c.query.Evaluate(membership) {
			dst = append(dst, Entity(i))
		}
	}
	return dst
}

// TotalMatched returns the number of matches without locking the storage.
func (c *Cursor) TotalMatched() int {
	if c.initialized {
		return len(c.matched)
	}
	return len(c.collect(nil))
}

func (c *Cursor) Err() error {
	return c.query.err
}
