package log

import (
	"github.com/TheBitDrifter/depot"
	"github.com/rs/zerolog"
)

type Loggable interface {
	Components() []depot.Component
	BitOf(depot.Component) (depot.Bit, error)
	Len() int
}

func loadComponentIntoArrayLogger(
	component depot.Component,
	bit depot.Bit,
	arrayLogger *zerolog.Array,
) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Uint32("component_bit", bit.Index())
	dictLogger = dictLogger.Str("component_name", component.Name())
	dictLogger = dictLogger.Uint32("component_size", component.Size())
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, target Loggable) *zerolog.Event {
	components := target.Components()
	zeroLoggerEvent.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, component := range components {
		bit, err := target.BitOf(component)
		if err != nil {
			continue
		}
		arrayLogger = loadComponentIntoArrayLogger(component, bit, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

// Components logs every registered component with its bit.
func Components(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Send()
}

// Storage logs the registered components and the entity count.
func Storage(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, target)
	zeroLoggerEvent.Int("total_entities", target.Len()).Send()
}

// Entity logs which registered components an entity holds a value for.
func Entity(logger *zerolog.Logger, level zerolog.Level, sto depot.Storage, en depot.Entity) {
	zeroLoggerEvent := logger.WithLevel(level)
	arrayLogger := zerolog.Arr()
	for _, component := range sto.Components() {
		has, err := sto.Has(en, component)
		if err != nil || !has {
			continue
		}
		bit, _ := sto.BitOf(component)
		arrayLogger = loadComponentIntoArrayLogger(component, bit, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Int("entity_id", int(en)).Send()
}

// Result logs the shape of a query result: its groups and matched entities.
func Result(logger *zerolog.Logger, level zerolog.Level, result depot.Result) {
	zeroLoggerEvent := logger.WithLevel(level)
	groups := zerolog.Arr()
	for i, component := range result.Components {
		groups = groups.Dict(zerolog.Dict().
			Str("component_name", component.Name()).
			Int("slots", len(result.Groups[i])))
	}
	entities := zerolog.Arr()
	for _, en := range result.Entities {
		entities = entities.Int(int(en))
	}
	zeroLoggerEvent.Array("groups", groups)
	zeroLoggerEvent.Array("entities", entities)
	zeroLoggerEvent.Int("matched", result.Len()).Send()
}

// CreateQueryLogger creates a sub logger with the entry {"query" : text}.
func CreateQueryLogger(logger *zerolog.Logger, text string) *zerolog.Logger {
	newLogger := logger.With().Str("query", text).Logger()
	return &newLogger
}
