package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write settings stored with your data",
	}

	settingsCmd.AddCommand(
		newSettingsSetCmd(app),
		newSettingsGetCmd(app),
		newSettingsListCmd(app),
	)

	return settingsCmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tracker.SetSetting(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func newSettingsGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := app.tracker.State().Settings[args[0]]
			if !ok {
				return fmt.Errorf("setting %q is not set", args[0])
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newSettingsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := app.tracker.State().Settings
			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, settings[k])
			}
			return nil
		},
	}
}
