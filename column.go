package depot

// column holds one slot per entity for a single component type. A nil slot is
// an empty element.
type column struct {
	reg   registration
	slots []*Slot
}

func newColumn(reg registration, entities int) column {
	return column{
		reg:   reg,
		slots: make([]*Slot, entities),
	}
}

func (c *column) grow() {
	c.slots = append(c.slots, nil)
}

func (c *column) write(en Entity, value any) {
	if existing := c.slots[en]; existing != nil {
		existing.overwrite(value)
		return
	}
	c.slots[en] = newSlot(value)
}
