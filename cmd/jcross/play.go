package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/jcross/internal/navigation"
	"github.com/alexisbeaulieu97/jcross/internal/tui"
)

var errNotTerminal = errors.New("standard output is not a terminal")

type playOptions struct {
	start string
}

func newPlayCmd(flags *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Launch the interactive puzzle browser",
		Long: `Launch the interactive puzzle browser.

Use --start to open directly on a screen, for example "group/2" or "game/0/3/10".
Back navigation walks up through the screens leading to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "Route to open on launch")

	return cmd
}

func runPlay(cmd *cobra.Command, flags *rootFlags, opts *playOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("launch the game", "checking the terminal", errNotTerminal,
			"Run jcross from an interactive terminal, or use 'jcross groups' and 'jcross themes' for plain output.")
	}

	start := navigation.Main()
	if opts.start != "" {
		route, err := navigation.Parse(opts.start)
		if err != nil {
			return newCommandError("launch the game", "resolving --start", err, "Valid routes: main, group/G, folder/G/F, game/G/F/P, options, themes, about.")
		}
		start = route
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "play")
	log.Info(ctx, "launching game", "seed", app.Seed, "theme_id", app.Config.ThemeID, "start", start.Path())

	model := tui.New(tui.Options{
		Context:   ctx,
		Catalog:   app.Catalog,
		Logger:    log,
		Dark:      app.Config.DarkMode,
		ThemeID:   app.Config.ThemeID,
		Settings:  app.Config.Settings,
		Start:     start,
		MinWidth:  app.Config.Terminal.MinWidth,
		MinHeight: app.Config.Terminal.MinHeight,
		Unicode:   app.Config.Terminal.Unicode,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		log.Error(ctx, "game execution failed", "error", err)
		return fmt.Errorf("failed to run game: %w", err)
	}

	log.Info(ctx, "game closed")
	return nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
