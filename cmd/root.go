package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "meow",
		Short:         "meow-macros: food and training log",
		Long:          "meow tracks what you eat against daily macro goals, records gym sessions set by set, and shows trends over the last days.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(rootCmd.ErrOrStderr())
	if err != nil {
		rootCmd.Args = cobra.ArbitraryArgs
		rootCmd.FParseErrWhitelist.UnknownFlags = true
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.AddCommand(newVersionCmd())
		return rootCmd
	}

	// The day key follows the clock when the command starts, not when it was wired.
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		app.tracker.RefreshDay()
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newFoodCmd(app),
		newCatalogCmd(app),
		newSummaryCmd(app),
		newWorkoutCmd(app),
		newTrendsCmd(app),
		newRestCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newSettingsCmd(app),
	)

	return rootCmd
}
