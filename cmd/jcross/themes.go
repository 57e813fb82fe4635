package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

type themesOptions struct {
	jsonOutput bool
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runThemes(cmd *cobra.Command, flags *rootFlags, opts *themesOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "themes")
	themes := model.SelectTheme(app.Catalog.Themes(), app.Config.ThemeID)
	log.Debug(ctx, "listing themes", "count", len(themes), "selected", app.Config.ThemeID)

	if opts.jsonOutput {
		return renderThemesJSON(cmd, themes)
	}
	return renderThemesTable(cmd, themes)
}

func renderThemesTable(cmd *cobra.Command, themes []model.AppTheme) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tPRIMARY\tSECONDARY\tBACKGROUND\tSELECTED")

	mark := "*"
	if isTerminal(cmd.OutOrStdout()) {
		mark = "✓"
	}

	for _, t := range themes {
		selected := ""
		if t.Selected {
			selected = mark
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Primary.Hex(), t.Secondary.Hex(), t.Background.Hex(), selected)
	}

	return writer.Flush()
}

type themeJSON struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Selected   bool   `json:"selected"`
}

func renderThemesJSON(cmd *cobra.Command, themes []model.AppTheme) error {
	payload := make([]themeJSON, len(themes))
	for i, t := range themes {
		payload[i] = themeJSON{
			ID:         t.ID,
			Name:       t.Name,
			Primary:    t.Primary.Hex(),
			Secondary:  t.Secondary.Hex(),
			Background: t.Background.Hex(),
			Selected:   t.Selected,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
