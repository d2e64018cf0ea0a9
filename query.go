package depot

import (
	"github.com/TheBitDrifter/mask"
)

var _ Query = &query{}

type query struct {
	sto        *storage
	mask       mask.Mask
	components []Component
	columns    []int
	err        error
}

func newQuery(sto *storage) *query {
	return &query{sto: sto}
}

// With requires each component in turn. Groups in the result follow the order
// components are first required in; requiring one twice has no further effect.
func (q *query) With(components ...Component) Query {
	for _, c := range components {
		if q.err != nil {
			return q
		}
		idx, ok := q.sto.registry.lookup(c.Type())
		if !ok {
			q.err = TypeNotRegisteredError{Type: c.Type()}
			return q
		}
		if q.requires(idx) {
			continue
		}
		q.mask.Mark(q.sto.registry.at(idx).bit.Index())
		q.components = append(q.components, q.sto.registry.at(idx).component)
		q.columns = append(q.columns, idx)
	}
	return q
}

func (q *query) requires(idx int) bool {
	for _, col := range q.columns {
		if col == idx {
			return true
		}
	}
	return false
}

func (q *query) Err() error {
	return q.err
}

func (q *query) Mask() mask.Mask {
	return q.mask
}

func (q *query) Components() []Component {
	return q.components
}

// Evaluate reports whether a membership mask carries every required component.
// A query that requires nothing matches nothing.
func (q *query) Evaluate(membership mask.Mask) bool {
	if len(q.columns) == 0 {
		return false
	}
	return membership.ContainsAll(q.mask)
}

// Run scans entities in creation order and collects, per required component,
// the slots of every entity that carries all of them. The k-th slot of each
// group belongs to the same entity.
func (q *query) Run() (Result, error) {
	if q.err != nil {
		return Result{}, q.err
	}
	if len(q.columns) == 0 {
		return Result{}, nil
	}
	result := Result{
		Components: q.components,
		Groups:     make([][]*Slot, len(q.columns)),
		Entities:   []Entity{},
	}
	for i := range result.Groups {
		result.Groups[i] = []*Slot{}
	}
	for i, membership := range q.sto.membership {
		if !q.Evaluate(membership) {
			continue
		}
		en := Entity(i)
		result.Entities = append(result.Entities, en)
		for g, col := range q.columns {
			result.Groups[g] = append(result.Groups[g], q.sto.columns[col].slots[en])
		}
	}
	q.sto.logger.Debug().
		Int("required", len(q.columns)).
		Int("matched", len(result.Entities)).
		Msg("ran query")
	return result, nil
}

// Result holds one group of slots per required component, aligned by position.
type Result struct {
	Components []Component
	Groups     [][]*Slot
	Entities   []Entity
}

// Len returns the number of matching entities
func (r Result) Len() int {
	return len(r.Entities)
}

// Group returns the slots for c, if c was required
func (r Result) Group(c Component) ([]*Slot, bool) {
	for i, comp := range r.Components {
		if comp.Type() == c.Type() {
			return r.Groups[i], true
		}
	}
	return nil, false
}
