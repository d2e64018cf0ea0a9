package main

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var newScreen = tcell.NewScreen

func newViewCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Draw the seeded demo store on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sto, err := newDemoStorage(cfg)
			if err != nil {
				return err
			}
			screen, err := newScreen()
			if err != nil {
				return eris.Wrap(err, "failed to create screen")
			}
			if err := screen.Init(); err != nil {
				return eris.Wrap(err, "failed to initialize screen")
			}
			defer screen.Fini()
			return runView(screen, sto)
		},
	}
}

// runView redraws the store after every event until q, Esc or Ctrl-C.
// Arrow keys pan the camera.
func runView(screen tcell.Screen, sto depot.Storage) error {
	r := render.NewRenderer(screen)
	for {
		drawn, err := r.DrawFrame(sto)
		if err != nil {
			return err
		}
		cam := r.Camera()
		r.DrawStatus(fmt.Sprintf("%d/%d drawn  offset %d,%d  arrows: pan  q: quit",
			drawn, sto.Len(), cam.OffsetX, cam.OffsetY))
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			offsetX, offsetY := cam.OffsetX, cam.OffsetY
			screen.Sync()
			r = render.NewRenderer(screen)
			r.Camera().OffsetX, r.Camera().OffsetY = offsetX, offsetY
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyLeft:
				cam.OffsetX--
			case tcell.KeyRight:
				cam.OffsetX++
			case tcell.KeyUp:
				cam.OffsetY--
			case tcell.KeyDown:
				cam.OffsetY++
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			}
		}
	}
}
