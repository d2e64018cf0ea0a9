package main

import (
	"math/rand"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
)

type Location struct {
	X float32
	Y float32
}

type Size struct {
	Value float32
}

type Health struct {
	Current int
	Max     int
}

var (
	locationComponent = depot.FactoryNewComponent[Location]()
	sizeComponent     = depot.FactoryNewComponent[Size]()
	healthComponent   = depot.FactoryNewComponent[Health]()
)

const (
	demoWidth  = 60
	demoHeight = 20
)

var demoGlyphs = []render.Glyph{
	{Glyph: ".", Color: tcell.ColorGray, Order: 0},
	{Glyph: "k", Color: tcell.ColorYellow, Order: 1},
	{Glyph: "g", Color: tcell.ColorGreen, Order: 1},
	{Glyph: "@", Color: tcell.ColorRed, Order: 2},
}

// newDemoStorage fills a store with cfg.Entities entities placed from cfg.Seed.
// Every entity has a Location and a render.Position; Size, Health and a
// render.Glyph are attached to a subset.
func newDemoStorage(cfg Config) (depot.Storage, error) {
	sto := depot.Factory.NewStorage()
	if err := sto.Register(locationComponent, sizeComponent, healthComponent); err != nil {
		return nil, eris.Wrap(err, "failed to register demo components")
	}
	if err := render.Register(sto); err != nil {
		return nil, eris.Wrap(err, "failed to register render components")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Entities; i++ {
		x, y := rng.Intn(demoWidth), rng.Intn(demoHeight)
		b := sto.NewEntity().With(Location{float32(x), float32(y)}, render.Position{X: x, Y: y})
		if rng.Intn(2) == 0 {
			b.With(Size{Value: float32(1 + rng.Intn(10))})
		}
		if rng.Intn(3) == 0 {
			maxHP := 5 + rng.Intn(20)
			b.With(Health{Current: 1 + rng.Intn(maxHP), Max: maxHP})
		}
		if rng.Intn(4) != 0 {
			b.With(demoGlyphs[rng.Intn(len(demoGlyphs))])
		}
		if err := b.Err(); err != nil {
			return nil, eris.Wrapf(err, "failed to create demo entity %d", i)
		}
	}
	return sto, nil
}

// readGroup copies the values out of one result group under shared views.
func readGroup(slots []*depot.Slot) []any {
	values := make([]any, 0, len(slots))
	for _, slot := range slots {
		view := slot.Read()
		values = append(values, view.Value())
		view.Release()
	}
	return values
}
