package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/TheBitDrifter/depot"
	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

type scenarioGroup struct {
	Component string `json:"component"`
	Values    []any  `json:"values"`
}

type scenarioOutput struct {
	Entities []depot.Entity  `json:"entities"`
	Groups   []scenarioGroup `json:"groups"`
}

func newScenarioCmd() *cobra.Command {
	var asJSON, asTable bool
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run the Location/Size scenario and print the matched groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON && asTable {
				return eris.New("--json and --table are mutually exclusive")
			}
			out, err := runScenario()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(w, out)
			case asTable:
				return writeTable(w, out)
			}
			fmt.Fprintf(w, "entities: %v\n", out.Entities)
			for _, g := range out.Groups {
				fmt.Fprintf(w, "%s: %+v\n", g.Component, g.Values)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&asTable, "table", false, "print the result as an aligned table")
	return cmd
}

// runScenario creates four entities, two of which carry both Location and
// Size, and queries for that pair.
func runScenario() (scenarioOutput, error) {
	sto := depot.Factory.NewStorage()
	if err := sto.Register(locationComponent, sizeComponent); err != nil {
		return scenarioOutput{}, eris.Wrap(err, "failed to register scenario components")
	}

	for _, values := range [][]any{
		{Location{42, 24}, Size{10}},
		{Size{11}},
		{Location{43, 25}},
		{Location{44, 26}, Size{12}},
	} {
		if err := sto.NewEntity().With(values...).Err(); err != nil {
			return scenarioOutput{}, eris.Wrap(err, "failed to create scenario entities")
		}
	}

	result, err := sto.Query().With(locationComponent).With(sizeComponent).Run()
	if err != nil {
		return scenarioOutput{}, eris.Wrap(err, "failed to run scenario query")
	}
	out := scenarioOutput{Entities: result.Entities}
	for i, c := range result.Components {
		out.Groups = append(out.Groups, scenarioGroup{Component: c.Name(), Values: readGroup(result.Groups[i])})
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to encode output")
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// writeTable prints one row per matched entity and one column per group.
func writeTable(w io.Writer, out scenarioOutput) error {
	header := []string{"ENTITY"}
	for _, g := range out.Groups {
		header = append(header, g.Component)
	}
	rows := [][]string{header}
	for i, en := range out.Entities {
		row := []string{fmt.Sprint(en)}
		for _, g := range out.Groups {
			row = append(row, fmt.Sprintf("%+v", g.Values[i]))
		}
		rows = append(rows, row)
	}
	return writeRows(w, rows)
}

func writeRows(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}
