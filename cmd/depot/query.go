package main

import (
	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/cql"
	"github.com/TheBitDrifter/depot/log"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type queryRow struct {
	ID   depot.Entity   `json:"id"`
	Data map[string]any `json:"data"`
}

type queryOutput struct {
	Query      string     `json:"query"`
	Components []string   `json:"components"`
	Matched    int        `json:"matched"`
	Results    []queryRow `json:"results"`
}

func newQueryCmd(cfg Config, logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "query <cql>",
		Short:   "Run a CONTAINS query against the seeded demo store",
		Example: `depot query "CONTAINS(Location, Size) & CONTAINS(Health)"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sto, err := newDemoStorage(cfg)
			if err != nil {
				return err
			}
			log.Storage(&logger, sto, zerolog.DebugLevel)

			out, err := runQuery(sto, args[0], logger)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func runQuery(sto depot.Storage, text string, logger zerolog.Logger) (queryOutput, error) {
	canonical, err := cql.Format(text)
	if err != nil {
		return queryOutput{}, err
	}
	q, err := cql.Parse(text, sto)
	if err != nil {
		return queryOutput{}, err
	}
	result, err := q.Run()
	if err != nil {
		return queryOutput{}, eris.Wrap(err, "failed to run query")
	}
	log.Result(log.CreateQueryLogger(&logger, canonical), zerolog.DebugLevel, result)

	out := queryOutput{
		Query:   canonical,
		Matched: result.Len(),
		Results: make([]queryRow, 0, result.Len()),
	}
	for _, c := range result.Components {
		out.Components = append(out.Components, c.Name())
	}
	groups := make([][]any, len(result.Groups))
	for i, slots := range result.Groups {
		groups[i] = readGroup(slots)
	}
	for row, en := range result.Entities {
		data := make(map[string]any, len(out.Components))
		for i, name := range out.Components {
			data[name] = groups[i][row]
		}
		out.Results = append(out.Results, queryRow{ID: en, Data: data})
	}
	return out, nil
}
