package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hafazan/internal/cli/formatter"
	"github.com/alexanderramin/hafazan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans      service.PlanService
	Progress   service.ProgressService
	Tasks      service.TaskService
	Analytics  service.AnalyticsService
	Activities service.ActivityService
	Settings   service.SettingsService
	Content    service.ContentService
	Import     service.ImportService

	// Now is the command clock. Nil means time.Now.
	Now func() time.Time
	// IsInteractive enables spinners while content is fetched.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// spin starts a spinner on w when the terminal is interactive and returns
// the function that stops it.
func (a *App) spin(w io.Writer, message string) func() {
	if a.IsInteractive == nil || !a.IsInteractive() {
		return func() {}
	}
	s := formatter.NewSpinner(w, message)
	s.Start()
	return s.Stop
}

// NewRootCmd creates the top-level "hafazan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "hafazan",
		Short:         "Quran memorization planner and murajaah scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newChaptersCmd(app),
		newPlanCmd(app),
		newTodayCmd(app),
		newMemorizeCmd(app),
		newReviewCmd(app),
		newRangesCmd(app),
		newCalendarCmd(app),
		newStatsCmd(app),
		newActivityCmd(app),
		newSettingsCmd(app),
		newReadCmd(app),
	)

	return root
}
