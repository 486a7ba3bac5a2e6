package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/marquito38/meow-macros/internal/application"
)

type restTickMsg struct {
	countdowns []application.RestCountdown
}

type restDoneMsg struct {
	err error
}

type restTimerModel struct {
	spinner    spinner.Model
	countdowns []application.RestCountdown
	err        error
	done       bool
}

func newRestTimerModel(initial []application.RestCountdown) restTimerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("213"))),
	)

	return restTimerModel{spinner: s, countdowns: initial}
}

func (m restTimerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m restTimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case restTickMsg:
		m.countdowns = msg.countdowns
		return m, nil
	case restDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m restTimerModel) View() string {
	if m.done {
		return ""
	}

	lines := make([]string, 0, len(m.countdowns))
	for _, countdown := range m.countdowns {
		lines = append(lines, fmt.Sprintf("%s %s %s", m.spinner.View(), countdown.Exercise, formatCountdown(countdown.RemainingSeconds)))
	}
	return strings.Join(lines, "\n")
}

func formatCountdown(seconds int) string {
	if seconds <= 0 {
		return "done"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// runRestTimer shows the countdowns of timer until every one has finished or
// ctx is cancelled. The timer ticks on its own goroutine and feeds the view.
func runRestTimer(ctx context.Context, output io.Writer, timer *application.RestTimer, period time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		newRestTimerModel(timer.Snapshot()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err := timer.Run(ctx, period, func(countdowns []application.RestCountdown) {
			p.Send(restTickMsg{countdowns: countdowns})
		})
		p.Send(restDoneMsg{err: err})
	}()

	finalModel, err := p.Run()
	cancel()
	<-finished
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return context.Canceled
		}
		return err
	}

	result, ok := finalModel.(restTimerModel)
	if !ok {
		return fmt.Errorf("unexpected final rest timer model type %T", finalModel)
	}

	return result.err
}

// startRestTimers starts one countdown per distinct exercise. A repeated name
// would otherwise toggle its countdown off again.
func startRestTimers(timer *application.RestTimer, exercises []string) {
	seen := make(map[string]struct{}, len(exercises))
	for _, exercise := range exercises {
		name := strings.TrimSpace(exercise)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		timer.Toggle(name)
	}
}

func newRestCmd(app *app) *cobra.Command {
	var (
		seconds int
		tick    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "rest <exercise>...",
		Short: "Count down rest between sets, one timer per exercise",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration := app.tracker.Settings().RestDuration
			if seconds > 0 {
				duration = time.Duration(seconds) * time.Second
			}

			timer := application.NewRestTimer(duration)
			startRestTimers(timer, args)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := runRestTimer(ctx, cmd.ErrOrStderr(), timer, tick); err != nil {
				if errors.Is(err, context.Canceled) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Rest stopped")
					return nil
				}
				return err
			}

			for _, countdown := range timer.Snapshot() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rest over: %s\n", countdown.Exercise)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 0, "Rest length in seconds (defaults to training.rest_seconds)")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Length of one countdown second")
	_ = cmd.Flags().MarkHidden("tick")

	return cmd
}
