package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jcross/internal/mock"
	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/tui/components"
)

type groupsOptions struct {
	jsonOutput bool
}

func newGroupsCmd(flags *rootFlags) *cobra.Command {
	opts := &groupsOptions{}

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the puzzle size groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runGroups(cmd *cobra.Command, flags *rootFlags, opts *groupsOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "groups")
	groups := app.Catalog.Groups()
	log.Debug(ctx, "listing groups", "count", len(groups), "seed", app.Seed)

	if opts.jsonOutput {
		return renderGroupsJSON(cmd, groups)
	}
	return renderGroupsTable(cmd, groups)
}

func renderGroupsTable(cmd *cobra.Command, groups []model.Group) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSIZE\tNAME\tGRID\tFOLDERS\tPUZZLES\tSOLVED\tPROGRESS")

	for _, g := range groups {
		edge := g.Size.Dimension()
		fmt.Fprintf(writer, "%d\t%s\t%s\t%dx%d\t%d\t%d\t%d\t%s\n",
			g.ID, g.Size.ShortLabel(), g.Size.Label(), edge, edge,
			mock.FolderCount(g.ID), g.TotalPuzzles, g.SolvedPuzzles,
			components.Percent(g.ProgressPercent()),
		)
	}

	return writer.Flush()
}

type groupJSON struct {
	ID       int     `json:"id"`
	Size     string  `json:"size"`
	Name     string  `json:"name"`
	Folders  int     `json:"folders"`
	Total    int     `json:"total_puzzles"`
	Solved   int     `json:"solved_puzzles"`
	Progress float64 `json:"progress"`
}

func renderGroupsJSON(cmd *cobra.Command, groups []model.Group) error {
	payload := make([]groupJSON, len(groups))
	for i, g := range groups {
		payload[i] = groupJSON{
			ID:       g.ID,
			Size:     g.Size.ShortLabel(),
			Name:     g.Size.Label(),
			Folders:  mock.FolderCount(g.ID),
			Total:    g.TotalPuzzles,
			Solved:   g.SolvedPuzzles,
			Progress: g.ProgressPercent(),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
