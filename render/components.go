package render

import (
	"github.com/TheBitDrifter/depot"
	"github.com/gdamore/tcell/v2"
)

// Position places an entity on the world grid.
type Position struct {
	X, Y int
}

// Glyph is what an entity looks like on screen. Lower Order is drawn first.
type Glyph struct {
	Glyph string
	Color tcell.Color
	Order int
}

var (
	PositionComponent = depot.FactoryNewComponent[Position]()
	GlyphComponent    = depot.FactoryNewComponent[Glyph]()
)

// Register adds the components the renderer draws from to sto.
func Register(sto depot.Storage) error {
	return sto.Register(PositionComponent, GlyphComponent)
}
