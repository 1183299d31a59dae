package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hafazan/internal/cli/formatter"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/scheduler"
	"github.com/alexanderramin/hafazan/internal/service"
)

func newTodayCmd(app *App) *cobra.Command {
	var planFlag, dateFlag string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's memorization and review tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			today := app.now()
			if dateFlag != "" {
				d, err := parseDay(dateFlag, today)
				if err != nil {
					return err
				}
				today = d
			}

			plan, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.TodayTasks(ctx, plan.ID, today)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(plan, tasks, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to plan for, YYYY-MM-DD (default today)")

	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	var planFlag, monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of scheduled ayahs and reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()
			year, month, err := parseMonth(monthFlag, now)
			if err != nil {
				return err
			}
			plan, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}
			cal, err := app.Tasks.CalendarData(ctx, plan.ID, year, month)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(plan, cal, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "Month YYYY-MM (default this month)")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var planFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress, streaks and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			plan, err := resolvePlan(ctx, app, planFlag)
			switch {
			case err == nil:
				stats, err := planStats(cmd, app, plan)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatPlanStats(stats))
			case !errors.Is(err, service.ErrNoActivePlan):
				return err
			}

			overall, err := app.Tasks.OverallStats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatOverallStats(overall))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")

	return cmd
}

func planStats(cmd *cobra.Command, app *App, plan *domain.Plan) (formatter.PlanStats, error) {
	ctx := cmd.Context()
	stats := formatter.PlanStats{Plan: plan}
	var err error
	if stats.Progress, err = app.Tasks.Progress(ctx, plan.ID); err != nil {
		return stats, err
	}
	if stats.Streak, err = app.Analytics.Streak(ctx, plan.ID, app.now()); err != nil {
		return stats, err
	}
	if stats.Completion, err = app.Analytics.CompletionStatus(ctx, plan.ID); err != nil {
		return stats, err
	}
	if stats.NextSteps, err = app.Analytics.NextSteps(ctx, plan.ID); err != nil {
		return stats, err
	}
	return stats, nil
}

// nextReview returns the earliest review of target scheduled after now.
func nextReview(plan *domain.Plan, chapter int, target domain.ReviewTarget, now time.Time) *time.Time {
	var next *time.Time
	for _, e := range scheduler.FutureReviews(plan.ReviewSchedule, now) {
		if e.Chapter != chapter || e.Target != target {
			continue
		}
		if next == nil || e.Date.Before(*next) {
			d := e.Date
			next = &d
		}
	}
	return next
}
