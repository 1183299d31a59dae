package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hafazan/internal/cli/formatter"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/service"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"drill"},
		Short:   "Track repetition drills",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityStartCmd(app),
		newActivityShowCmd(app),
		newActivityRepCmd(app),
		newActivityDoneCmd(app),
		newActivityAbandonCmd(app),
		newActivityResetCmd(app),
	)

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drills, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			activities, err := app.Activities.List(ctx, domain.ActivityFilter(filter))
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Fprintln(out, "No activities found.")
				return nil
			}
			stats, err := app.Activities.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatActivityList(activities, app.now()))
			fmt.Fprint(out, formatter.FormatActivityStats(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(domain.FilterAll), "all, hafazan, murajaah, completed or incomplete")

	return cmd
}

func newActivityStartCmd(app *App) *cobra.Command {
	var planFlag, sessionType string
	var verse, start, end int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a drill over an ayah or a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target, err := targetFromFlags(verse, start, end)
			if err != nil {
				return err
			}
			plan, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}
			a, err := app.Activities.Start(ctx, service.StartActivityRequest{
				PlanID:      plan.ID,
				Target:      target,
				SessionType: domain.SessionType(sessionType),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s", formatter.FormatActivity(a))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")
	cmd.Flags().StringVar(&sessionType, "type", string(domain.SessionHafazan), "hafazan or murajaah")
	cmd.Flags().IntVar(&verse, "verse", 0, "Single ayah to drill")
	cmd.Flags().IntVar(&start, "start", 0, "First ayah of the range")
	cmd.Flags().IntVar(&end, "end", 0, "Last ayah of the range")

	return cmd
}

func newActivityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a drill and where it resumes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatActivity(a))
			if a.Completed {
				return nil
			}
			rp, err := app.Activities.ResumePoint(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatResumePoint(rp))
			return nil
		},
	}
}

func newActivityRepCmd(app *App) *cobra.Command {
	var reps, duration int

	cmd := &cobra.Command{
		Use:   "rep ID",
		Short: "Record drill progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			reps, duration, err = drillCounts(cmd, app, id, reps, duration, 1)
			if err != nil {
				return err
			}
			a, err := app.Activities.RecordRepetition(ctx, id, reps, duration)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivity(a))
			return nil
		},
	}

	cmd.Flags().IntVar(&reps, "reps", 0, "Total repetitions completed so far (default: one more)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Active drill time in seconds (default: unchanged)")

	return cmd
}

func newActivityDoneCmd(app *App) *cobra.Command {
	var duration int

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Complete a drill and record its memorization or review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.Complete(ctx, id, duration)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s", formatter.FormatActivity(a))
			return nil
		},
	}

	cmd.Flags().IntVar(&duration, "duration", 0, "Active drill time in seconds")

	return cmd
}

func newActivityAbandonCmd(app *App) *cobra.Command {
	var reps, duration int

	cmd := &cobra.Command{
		Use:   "abandon ID",
		Short: "Stop a drill, keeping its progress for later",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			reps, duration, err = drillCounts(cmd, app, id, reps, duration, 0)
			if err != nil {
				return err
			}
			a, err := app.Activities.Abandon(ctx, id, reps, duration)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paused %s", formatter.FormatActivity(a))
			return nil
		},
	}

	cmd.Flags().IntVar(&reps, "reps", 0, "Repetitions completed before stopping (default: unchanged)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Active drill time in seconds (default: unchanged)")

	return cmd
}

func newActivityResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset ID",
		Short: "Restart a drill from the first repetition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.Reset(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s", formatter.FormatActivity(a))
			return nil
		},
	}
}

// drillCounts fills in the --reps and --duration values the user left unset
// from the stored activity. Unset reps advance by step.
func drillCounts(cmd *cobra.Command, app *App, id string, reps, duration, step int) (int, int, error) {
	flags := cmd.Flags()
	if flags.Changed("reps") && flags.Changed("duration") {
		return reps, duration, nil
	}
	current, err := app.Activities.GetByID(cmd.Context(), id)
	if err != nil {
		return 0, 0, err
	}
	if !flags.Changed("reps") {
		reps = current.CompletedReps + step
	}
	if !flags.Changed("duration") {
		duration = current.DurationSec
	}
	return reps, duration, nil
}
