package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	seed       int64
	themeID    int
	dark       bool
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "jcross",
		Short:         "JCross nonogram puzzles in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, flags, &playOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "Seed for the mock catalog (0 picks one at random)")
	cmd.PersistentFlags().IntVar(&flags.themeID, "theme", 0, "Color theme id (0-11)")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Use the dark color scheme")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newGroupsCmd(flags))
	cmd.AddCommand(newRouteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
