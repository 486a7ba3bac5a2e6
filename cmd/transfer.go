package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/adapters/repo/snapshot"
	"github.com/marquito38/meow-macros/internal/domain"
)

func newImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a snapshot file",
		Long:  "Replace all data with a snapshot file. Both meow TOML exports and JSON backups of the browser version are accepted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot file: %w", err)
			}

			state, err := snapshot.Decode(data, app.tracker.Settings().Seed)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			if err := app.tracker.Replace(cmd.Context(), state); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d foods, %d logged entries, %d sessions\n",
				len(state.Library), countEntries(state.History), countEntries(state.FitnessHistory))
			return nil
		},
	}
}

func newExportCmd(app *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all data as a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.tracker.State()

			var (
				data []byte
				err  error
			)
			switch strings.ToLower(format) {
			case "toml":
				data, err = snapshot.Encode(state)
			case "json":
				data, err = snapshot.EncodeLegacy(state)
			default:
				return fmt.Errorf("unsupported export format %q (use toml or json)", format)
			}
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Snapshot format: toml or json (browser backup)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to stdout)")
	return cmd
}

func countEntries[T any](byDay map[domain.DayKey][]T) int {
	total := 0
	for _, items := range byDay {
		total += len(items)
	}
	return total
}
