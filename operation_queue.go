package depot

import (
	"reflect"

	"github.com/rotisserie/eris"
)

type operation struct {
	typ    operationType
	entity Entity
	values []any
}

type operationType int

const (
	opCreate operationType = iota
	opAttach
)

type opKey struct {
	entity Entity
	typ    reflect.Type
}

type opQueue struct {
	createOps   []operation
	attachOps   []operation
	pendingMods map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingMods: make(map[opKey]int),
	}
}

func (q *opQueue) len() int {
	return len(q.createOps) + len(q.attachOps)
}

func (q *opQueue) EnqueueCreate(values []any) {
	q.createOps = append(q.createOps, operation{
		typ:    opCreate,
		values: values,
	})
}

// EnqueueAttach queues value for en. A later attach of the same type to the
// same entity replaces the queued one, matching direct attach semantics.
func (q *opQueue) EnqueueAttach(en Entity, value any) {
	key := opKey{entity: en, typ: reflect.TypeOf(value)}
	if existingIdx, exists := q.pendingMods[key]; exists {
		q.attachOps[existingIdx].values = []any{value}
		return
	}
	q.pendingMods[key] = len(q.attachOps)
	q.attachOps = append(q.attachOps, operation{
		typ:    opAttach,
		entity: en,
		values: []any{value},
	})
}

func (s *storage) processOperationQueue() error {
	if s.opQueue.len() == 0 {
		return nil
	}

	// Creates first so queued attaches may target queued entities
	for _, op := range s.opQueue.createOps {
		if _, err := s.NewEntity().With(op.values...).Entity(); err != nil {
			return eris.Wrap(err, "failed to process queued entity creation")
		}
	}

	for _, op := range s.opQueue.attachOps {
		if err := s.attach(op.entity, op.values[0]); err != nil {
			return eris.Wrapf(err, "failed to process queued attach to entity %d", op.entity)
		}
	}

	s.logger.Debug().
		Int("created", len(s.opQueue.createOps)).
		Int("attached", len(s.opQueue.attachOps)).
		Msg("processed operation queue")

	s.opQueue.createOps = s.opQueue.createOps[:0]
	s.opQueue.attachOps = s.opQueue.attachOps[:0]
	clear(s.opQueue.pendingMods)
	return nil
}
