package render

import (
	"sort"

	"github.com/TheBitDrifter/depot"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws entities that carry both a Position and a Glyph onto a tcell
// screen. The bottom row is reserved for a status line.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen with one column per tile
// and world (0, 0) in the top left corner.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	viewH := h - 1
	return &Renderer{
		screen: screen,
		camera: NewCamera(w/2, viewH/2, 1, w, viewH),
	}
}

// Camera exposes the viewport for panning.
func (r *Renderer) Camera() *Camera { return r.camera }

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

type renderableEntity struct {
	en    depot.Entity
	pos   Position
	glyph Glyph
}

// DrawFrame clears the screen and draws every visible entity, ordered by
// Glyph.Order. It returns the number of entities drawn.
func (r *Renderer) DrawFrame(sto depot.Storage) (int, error) {
	r.screen.Clear()

	result, err := sto.Query().With(PositionComponent, GlyphComponent).Run()
	if err != nil {
		return 0, err
	}
	positions, err := PositionComponent.Values(result)
	if err != nil {
		return 0, err
	}
	glyphs, err := GlyphComponent.Values(result)
	if err != nil {
		return 0, err
	}

	entities := make([]renderableEntity, 0, result.Len())
	for i, en := range result.Entities {
		entities = append(entities, renderableEntity{en: en, pos: positions[i], glyph: glyphs[i]})
	}
	// Stable keeps creation order among equal Order values.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].glyph.Order < entities[j].glyph.Order
	})

	drawn := 0
	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.glyph.Color).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.glyph.Glyph, style)
		drawn++
	}
	return drawn, nil
}

// DrawStatus writes text on the bottom row.
func (r *Renderer) DrawStatus(text string) {
	_, h := r.screen.Size()
	r.drawText(0, h-1, text, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
