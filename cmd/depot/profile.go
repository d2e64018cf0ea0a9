package main

import (
	"fmt"
	"time"

	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

func newProfileCmd(cfg Config) *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:       "profile [cpu|mem]",
		Short:     "Profile a query and update loop over the demo store",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"cpu", "mem"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := "cpu"
			if len(args) == 1 {
				mode = args[0]
			}
			var option func(*profile.Profile)
			switch mode {
			case "cpu":
				option = profile.CPUProfile
			case "mem":
				option = profile.MemProfile
			default:
				return eris.Errorf("unknown profile mode %q, want cpu or mem", mode)
			}

			sto, err := newDemoStorage(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			p := profile.Start(option, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook, profile.Quiet)
			updated, err := moveLoop(sto, iterations)
			p.Stop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s profile written to %s: %d updates in %s\n",
				mode, cfg.ProfilePath, updated, time.Since(start))
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "number of passes over the store")
	return cmd
}

// moveLoop moves every entity with a Location and a Size by its size, once per
// iteration, and returns the number of updates made.
func moveLoop(sto depot.Storage, iterations int) (int, error) {
	updated := 0
	query := sto.Query().With(locationComponent, sizeComponent)
	for i := 0; i < iterations; i++ {
		cursor := depot.Factory.NewCursor(query)
		for cursor.Next() {
			loc, err := locationComponent.GetMutFromCursor(cursor)
			if err != nil {
				cursor.Reset()
				return updated, err
			}
			size, err := sizeComponent.GetFromCursor(cursor)
			if err != nil {
				loc.Release()
				cursor.Reset()
				return updated, err
			}
			loc.Ptr().X += size.Value().Value
			size.Release()
			loc.Release()
			updated++
		}
		if err := cursor.Err(); err != nil {
			return updated, err
		}
	}
	return updated, nil
}
