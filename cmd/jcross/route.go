package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jcross/internal/navigation"
)

func newRouteCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <path>",
		Short: "Resolve a navigation path the way the game does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, flags, args[0])
		},
	}

	return cmd
}

func runRoute(cmd *cobra.Command, flags *rootFlags, path string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "route")

	route, err := navigation.Parse(path)
	if err != nil {
		log.Warn(ctx, "route rejected", "path", path, "error", err)
		return newCommandError("resolve route", path, err, "Valid routes: main, group/G, folder/G/F, game/G/F/P, options, themes, about.")
	}
	if len(route.Defaulted) > 0 {
		log.Warn(ctx, "route parameters defaulted to 0", "path", path, "params", strings.Join(route.Defaulted, ","))
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "screen:\t%s\n", route.Name)
	fmt.Fprintf(writer, "path:\t%s\n", route.Path())
	switch route.Name {
	case navigation.NameGame:
		fmt.Fprintf(writer, "puzzle:\t%d\n", route.PuzzleID)
		fallthrough
	case navigation.NameFolder:
		fmt.Fprintf(writer, "folder:\t%d\n", route.FolderID)
		fallthrough
	case navigation.NameGroup:
		fmt.Fprintf(writer, "group:\t%d\n", route.GroupID)
	}
	if len(route.Defaulted) > 0 {
		fmt.Fprintf(writer, "defaulted:\t%s\n", strings.Join(route.Defaulted, ", "))
	}
	return writer.Flush()
}
