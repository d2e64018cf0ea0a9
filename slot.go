package depot

import "reflect"

// Slot is a populated column element. The storage owns it; callers reach the
// value through views. Any number of shared views, or exactly one exclusive
// view, may be outstanding at a time. Breaking that rule panics with BorrowError.
type Slot struct {
	typ     reflect.Type
	ptr     reflect.Value // *T
	readers int
	writing bool
}

func newSlot(value any) *Slot {
	typ := reflect.TypeOf(value)
	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	return &Slot{typ: typ, ptr: ptr}
}

// Type returns the component type held by the slot
func (s *Slot) Type() reflect.Type {
	return s.typ
}

// Readers returns the number of outstanding shared views
func (s *Slot) Readers() int {
	return s.readers
}

// Writing reports whether an exclusive view is outstanding
func (s *Slot) Writing() bool {
	return s.writing
}

// Read takes a shared view. It panics if an exclusive view is outstanding.
func (s *Slot) Read() *View {
	if s.writing {
		panic(BorrowError{Type: s.typ, Readers: s.readers, Writing: s.writing})
	}
	s.readers++
	return &View{slot: s}
}

// Write takes an exclusive view. It panics if any other view is outstanding.
func (s *Slot) Write() *MutView {
	s.mustBeFree()
	s.writing = true
	return &MutView{slot: s}
}

func (s *Slot) mustBeFree() {
	if s.writing || s.readers > 0 {
		panic(BorrowError{Type: s.typ, Readers: s.readers, Writing: s.writing, Exclusive: true})
	}
}

// overwrite replaces the held value in place so handles already given out
// observe it.
func (s *Slot) overwrite(value any) {
	s.mustBeFree()
	s.ptr.Elem().Set(reflect.ValueOf(value))
}

// View is a shared, read-only view of a slot.
type View struct {
	slot     *Slot
	released bool
}

// Value returns a copy of the held component value.
func (v *View) Value() any {
	return v.slot.ptr.Elem().Interface()
}

// Release ends the view. Releasing twice is a no-op.
func (v *View) Release() {
	if v.released {
		return
	}
	v.released = true
	v.slot.readers--
}

// MutView is an exclusive view of a slot.
type MutView struct {
	slot     *Slot
	released bool
}

// Value returns a pointer to the held component value, valid until Release.
func (v *MutView) Value() any {
	return v.slot.ptr.Interface()
}

// Release ends the view. Releasing twice is a no-op.
func (v *MutView) Release() {
	if v.released {
		return
	}
	v.released = true
	v.slot.writing = false
}
