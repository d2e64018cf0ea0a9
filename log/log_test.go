package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/log"
)

type Location struct{ X, Y float32 }

type EnergyComp struct{ value int }

func (EnergyComp) Name() string { return "EnergyComp" }

func newTestStorage(t *testing.T) (depot.Storage, depot.Component, depot.Component) {
	t.Helper()
	sto := depot.Factory.NewStorage()
	location := depot.FactoryNewComponent[Location]()
	energy := depot.FactoryNewComponent[EnergyComp]()
	require.NoError(t, sto.Register(location, energy))
	require.NoError(t, sto.NewEntity().With(Location{1, 2}).Err())
	require.NoError(t, sto.NewEntity().With(Location{3, 4}, EnergyComp{5}).Err())
	return sto, location, energy
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestStorageLogger(t *testing.T) {
	sto, _, _ := newTestStorage(t)

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	log.Storage(&bufLogger, sto, zerolog.InfoLevel)

	out := decode(t, &buf)
	require.Equal(t, "info", out["level"])
	require.EqualValues(t, 2, out["total_components"])
	require.EqualValues(t, 2, out["total_entities"])
	require.Equal(t, []any{
		map[string]any{"component_bit": float64(0), "component_name": "Location", "component_size": float64(8)},
		map[string]any{"component_bit": float64(1), "component_name": "EnergyComp", "component_size": float64(8)},
	}, out["components"])
}

func TestComponentsLogger(t *testing.T) {
	sto, _, _ := newTestStorage(t)

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	log.Components(&bufLogger, sto, zerolog.DebugLevel)

	out := decode(t, &buf)
	require.Equal(t, "debug", out["level"])
	require.Len(t, out["components"], 2)
	require.NotContains(t, out, "total_entities")
}

func TestEntityLogger(t *testing.T) {
	sto, _, _ := newTestStorage(t)

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	log.Entity(&bufLogger, zerolog.InfoLevel, sto, 0)

	out := decode(t, &buf)
	require.EqualValues(t, 0, out["entity_id"])
	require.Equal(t, []any{
		map[string]any{"component_bit": float64(0), "component_name": "Location", "component_size": float64(8)},
	}, out["components"])
}

func TestResultLogger(t *testing.T) {
	sto, location, energy := newTestStorage(t)
	result, err := sto.Query().With(energy, location).Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	queryLogger := log.CreateQueryLogger(&bufLogger, "CONTAINS(EnergyComp, Location)")
	log.Result(queryLogger, zerolog.InfoLevel, result)

	out := decode(t, &buf)
	require.Equal(t, "CONTAINS(EnergyComp, Location)", out["query"])
	require.EqualValues(t, 1, out["matched"])
	require.Equal(t, []any{float64(1)}, out["entities"])
	require.Equal(t, []any{
		map[string]any{"component_name": "EnergyComp", "slots": float64(1)},
		map[string]any{"component_name": "Location", "slots": float64(1)},
	}, out["groups"])
}
