package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/application"
	"github.com/marquito38/meow-macros/internal/domain"
)

func newWorkoutCmd(app *app) *cobra.Command {
	workoutCmd := &cobra.Command{
		Use:   "workout",
		Short: "Record sets and review training sessions",
	}

	workoutCmd.AddCommand(
		newWorkoutStartCmd(app),
		newWorkoutSetCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutFinishCmd(app),
		newWorkoutDiscardCmd(app),
		newWorkoutRemoveCmd(app),
		newWorkoutRecentCmd(app),
		newWorkoutLastCmd(app),
	)

	return workoutCmd
}

func newWorkoutStartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start <routine>",
		Short: "Select the routine for the workout in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.recorder.Start(cmd.Context(), args[0]); err != nil {
				return err
			}
			return renderSheet(cmd, app, "")
		},
	}
}

func newWorkoutSetCmd(app *app) *cobra.Command {
	var (
		exercise string
		set      int
		field    string
		value    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record one field of a set in the workout in progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if set < 1 {
				return fmt.Errorf("--set must be 1 or greater, got %d", set)
			}

			draft, err := app.recorder.RecordSet(cmd.Context(), application.RecordSetCommand{
				Exercise: exercise,
				SetIndex: set - 1,
				Field:    domain.SetField(strings.ToLower(strings.TrimSpace(field))),
				Value:    value,
			})
			if err != nil {
				return err
			}

			recorded := draft.Exercises[strings.TrimSpace(exercise)][set-1]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s set %d: %s %s\n", strings.TrimSpace(exercise), set, recorded, recorded.Difficulty)
			return nil
		},
	}

	cmd.Flags().StringVar(&exercise, "exercise", "", "Exercise name")
	cmd.Flags().IntVar(&set, "set", 1, "Set number, starting at 1")
	cmd.Flags().StringVar(&field, "field", "", "Field to record: weight, reps or difficulty")
	cmd.Flags().StringVar(&value, "value", "", "Value: kilograms, repetitions, or easy|normal|hard")
	_ = cmd.MarkFlagRequired("exercise")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newWorkoutShowCmd(app *app) *cobra.Command {
	var routine string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the workout in progress next to last performances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderSheet(cmd, app, routine)
		},
	}

	cmd.Flags().StringVar(&routine, "routine", "", "Routine to show (defaults to the started one)")
	return cmd
}

func renderSheet(cmd *cobra.Command, app *app, routine string) error {
	sheet, err := app.recorder.Sheet(cmd.Context(), routine)
	if err != nil {
		if errors.Is(err, application.ErrNoRoutineSelected) {
			return fmt.Errorf("%w: pass --routine or run workout start", err)
		}
		return err
	}

	rendered, err := app.sheetRenderer(sheet)
	if err != nil {
		return fmt.Errorf("render workout: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func newWorkoutFinishCmd(app *app) *cobra.Command {
	var (
		routine  string
		duration float64
		date     string
	)

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Save the workout in progress as a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			session, err := app.recorder.Finish(cmd.Context(), application.FinishWorkoutCommand{
				Day:             day,
				RoutineID:       routine,
				DurationMinutes: duration,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s min, %d kcal burned, volume %s #%s\n",
				domain.RoutineName(app.tracker.Settings().Routines, session.RoutineID),
				grams(session.DurationMinutes), session.CaloriesBurned, grams(session.Volume()), session.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&routine, "routine", "", "Routine id (defaults to the started one)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Session length in minutes")
	addDateFlag(cmd, &date)
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func newWorkoutDiscardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Throw away the workout in progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.recorder.Discard(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Discarded the workout in progress")
			return nil
		},
	}
}

func newWorkoutRemoveCmd(app *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a saved session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			removed, err := app.tracker.DeleteSession(cmd.Context(), day, args[0])
			if err != nil {
				return err
			}
			if !removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No session %s on %s\n", args[0], app.dayLabel(day))
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", args[0])
			return nil
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}

func newWorkoutRecentCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, summary := range app.tracker.RecentSessions(limit) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s min\t%d kcal\tvolume %s\n",
					summary.Day, summary.Session.ID, summary.RoutineName,
					grams(summary.Session.DurationMinutes), summary.Session.CaloriesBurned, grams(summary.Volume))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of sessions (defaults to training.recent_limit)")
	return cmd
}

func newWorkoutLastCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "last <exercise>",
		Short: "Show the last recorded sets of an exercise",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise := strings.Join(args, " ")
			perf, ok := app.tracker.LastPerformance(exercise)
			if !ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", exercise, domain.NoPriorRecord)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", exercise, perf, perf.Day)
			return nil
		},
	}
}
