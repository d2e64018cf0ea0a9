package depot

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

var _ Storage = &storage{}

type storage struct {
	locked           bool
	registry         *registry
	columns          []column
	membership       []mask.Mask
	opQueue          opQueue
	logger           zerolog.Logger
	lateRegistration LateRegistration
}

func newStorage() Storage {
	return &storage{
		registry:         newRegistry(),
		opQueue:          newOpQueue(),
		logger:           Config.logger.With().Str("component", "depot").Logger(),
		lateRegistration: Config.lateRegistration,
	}
}

// Register assigns the next bit to each component in order and allocates its
// column. It stops at the first failure; components before it stay registered.
func (sto *storage) Register(components ...Component) error {
	if sto.locked {
		return LockedStorageError{}
	}
	for _, c := range components {
		if err := sto.register(c); err != nil {
			return err
		}
	}
	return nil
}

func (sto *storage) register(c Component) error {
	entities := len(sto.membership)
	if entities > 0 && sto.lateRegistration == LateRegistrationReject {
		return LateRegistrationError{Type: c.Type(), Entities: entities}
	}
	reg, err := sto.registry.register(c)
	if err != nil {
		return err
	}
	sto.columns = append(sto.columns, newColumn(reg, entities))
	sto.logger.Debug().
		Str("component_name", c.Name()).
		Uint32("bit", reg.bit.Index()).
		Int("backfilled", entities).
		Msg("registered component")
	return nil
}

func (sto *storage) BitOf(c Component) (Bit, error) {
	idx, ok := sto.registry.lookup(c.Type())
	if !ok {
		return 0, TypeNotRegisteredError{Type: c.Type()}
	}
	return sto.registry.at(idx).bit, nil
}

// Components returns the registered components in registration order
func (sto *storage) Components() []Component {
	return iter_util.Collect(sto.registry.components())
}

func (sto *storage) ComponentByName(name string) (Component, error) {
	idx, ok := sto.registry.lookupName(name)
	if !ok {
		return nil, UnknownComponentNameError{Name: name}
	}
	return sto.registry.at(idx).component, nil
}

// NewEntity appends an empty slot to every column and a zero membership mask.
// The returned builder attaches components to the new entity.
func (sto *storage) NewEntity() *EntityBuilder {
	if sto.locked {
		return &EntityBuilder{sto: sto, entity: -1, err: LockedStorageError{}}
	}
	return &EntityBuilder{sto: sto, entity: sto.newEntity()}
}

func (sto *storage) newEntity() Entity {
	for i := range sto.columns {
		sto.columns[i].grow()
	}
	sto.membership = append(sto.membership, mask.Mask{})
	en := Entity(len(sto.membership) - 1)
	sto.logger.Debug().Int("entity", int(en)).Msg("created entity")
	return en
}

// Attach writes value into the most recently created entity.
func (sto *storage) Attach(value any) error {
	if sto.locked {
		return LockedStorageError{}
	}
	return sto.attach(Entity(len(sto.membership)-1), value)
}

func (sto *storage) attach(en Entity, value any) error {
	typ := reflect.TypeOf(value)
	idx, ok := sto.registry.lookup(typ)
	if !ok {
		return TypeNotRegisteredError{Type: typ}
	}
	if len(sto.membership) == 0 {
		return NoEntityCreatedError{}
	}
	col := &sto.columns[idx]
	col.write(en, value)
	sto.membership[en].Mark(col.reg.bit.Index())
	return nil
}

func (sto *storage) Membership(en Entity) (mask.Mask, error) {
	if err := sto.checkEntity(en); err != nil {
		return mask.Mask{}, err
	}
	return sto.membership[en], nil
}

func (sto *storage) Has(en Entity, c Component) (bool, error) {
	slot, err := sto.Slot(en, c)
	if err != nil {
		return false, err
	}
	return slot != nil, nil
}

// Slot returns the entity's slot for c, or nil if it holds no value.
func (sto *storage) Slot(en Entity, c Component) (*Slot, error) {
	if err := sto.checkEntity(en); err != nil {
		return nil, err
	}
	idx, ok := sto.registry.lookup(c.Type())
	if !ok {
		return nil, TypeNotRegisteredError{Type: c.Type()}
	}
	return sto.columns[idx].slots[en], nil
}

func (sto *storage) Len() int {
	return len(sto.membership)
}

func (sto *storage) Query() Query {
	return newQuery(sto)
}

func (sto *storage) Locked() bool {
	return sto.locked
}

func (sto *storage) Lock() {
	sto.locked = true
}

// Unlock replays operations queued while locked. A failed replay is a
// programming error and panics.
func (sto *storage) Unlock() {
	sto.locked = false
	err := sto.processOperationQueue()
	if err != nil {
		panic(err)
	}
}

// EnqueueNewEntity creates the entity now, or after Unlock if the storage is
// locked. The returned Entity is the index the entity has or will have.
func (sto *storage) EnqueueNewEntity(values ...any) (Entity, error) {
	if !sto.locked {
		en, err := sto.NewEntity().With(values...).Entity()
		if err != nil {
			return -1, eris.Wrap(err, "failed to create entity directly")
		}
		return en, nil
	}
	for _, value := range values {
		if _, ok := sto.registry.lookup(reflect.TypeOf(value)); !ok {
			return -1, TypeNotRegisteredError{Type: reflect.TypeOf(value)}
		}
	}
	en := Entity(len(sto.membership) + len(sto.opQueue.createOps))
	sto.opQueue.EnqueueCreate(values)
	sto.logger.Debug().Int("entity", int(en)).Int("pending", sto.opQueue.len()).Msg("queued entity creation")
	return en, nil
}

// EnqueueAttach attaches value to en now, or after Unlock if the storage is
// locked. en may be an entity returned by EnqueueNewEntity.
func (sto *storage) EnqueueAttach(en Entity, value any) error {
	typ := reflect.TypeOf(value)
	if _, ok := sto.registry.lookup(typ); !ok {
		return TypeNotRegisteredError{Type: typ}
	}
	pending := len(sto.membership) + len(sto.opQueue.createOps)
	if en < 0 || int(en) >= pending {
		return EntityOutOfRangeError{Entity: en, Len: pending}
	}
	if !sto.locked {
		return sto.attach(en, value)
	}
	sto.opQueue.EnqueueAttach(en, value)
	return nil
}

func (sto *storage) checkEntity(en Entity) error {
	if en < 0 || int(en) >= len(sto.membership) {
		return EntityOutOfRangeError{Entity: en, Len: len(sto.membership)}
	}
	return nil
}
