package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hafazan/internal/cli/formatter"
	"github.com/alexanderramin/hafazan/internal/service"
)

func newChaptersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters",
		Short: "List the surahs available for a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := app.spin(cmd.ErrOrStderr(), "Fetching chapters...")
			chapters, err := app.Plans.Chapters(cmd.Context())
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChapters(chapters))
			return nil
		},
	}
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage memorization plans",
	}

	cmd.AddCommand(
		newPlanCreateCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanUseCmd(app),
		newPlanRemoveCmd(app),
		newPlanCompleteCmd(app),
		newPlanImportCmd(app),
	)

	return cmd
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var chapter, pace int
	var start string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a plan for a surah and make it active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDay(start, app.now())
			if err != nil {
				return err
			}

			stop := app.spin(cmd.ErrOrStderr(), "Fetching chapter...")
			plan, err := app.Plans.Create(cmd.Context(), service.CreatePlanRequest{
				Chapter:      chapter,
				StartDate:    startDate,
				VersesPerDay: pace,
			})
			stop()
			if err != nil {
				return err
			}

			end, _ := plan.LastScheduledDate()
			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s for %s: %d ayahs at %d/day, finishing %s\n",
				plan.DisplayID(), plan.ChapterName, plan.TotalVerses, plan.VersesPerDay,
				end.Format("Jan 2, 2006"))
			return nil
		},
	}

	cmd.Flags().IntVar(&chapter, "chapter", 0, "Surah number (1-114)")
	cmd.Flags().IntVar(&pace, "pace", 1, "Ayahs to memorize per day (1-10)")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("chapter")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plans, err := app.Plans.List(ctx)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plans yet. Create one with 'hafazan plan create --chapter N'.")
				return nil
			}

			summaries := make([]formatter.PlanSummary, 0, len(plans))
			for _, p := range plans {
				progress, err := app.Tasks.Progress(ctx, p.ID)
				if err != nil {
					return err
				}
				summaries = append(summaries, formatter.PlanSummary{Plan: p, Progress: progress})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(summaries))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a plan (default: the active plan)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := resolvePlan(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			progress, err := app.Tasks.Progress(ctx, plan.ID)
			if err != nil {
				return err
			}
			completion, err := app.Analytics.CompletionStatus(ctx, plan.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanDetail(formatter.PlanDetail{
				Plan:       plan,
				Progress:   progress,
				Completion: completion,
				Now:        app.now(),
			}))
			return nil
		},
	}
}

func newPlanUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use ID",
		Short: "Make a plan the active plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := resolvePlan(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.SetActive(ctx, plan.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active plan: %s (%s)\n", plan.ChapterName, plan.DisplayID())
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a plan with its progress, reviews and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := resolvePlan(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, plan.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %s (%s)\n", plan.ChapterName, plan.DisplayID())
			return nil
		},
	}
}

func newPlanCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [ID]",
		Short: "Close a plan once every ayah is memorized",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := resolvePlan(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			status, err := app.Plans.MarkCompleted(ctx, plan.ID, app.now())
			if err != nil {
				return err
			}
			if status == nil {
				progress, err := app.Tasks.Progress(ctx, plan.ID)
				if err != nil {
					return err
				}
				return fmt.Errorf("plan %s is not complete yet (%d/%d ayahs memorized)",
					plan.DisplayID(), progress.Completed, progress.Total)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompletion(plan, status))
			return nil
		},
	}
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create a plan from a JSON file of past memorizations and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := app.spin(cmd.ErrOrStderr(), "Importing plan...")
			res, err := app.Import.ImportPlan(cmd.Context(), args[0])
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported plan %s for %s: %d/%d ayahs memorized, %d reviews\n",
				res.Plan.DisplayID(), res.Plan.ChapterName, res.Memorized, res.Plan.TotalVerses, res.Reviews)
			if res.Completion != nil {
				fmt.Fprint(out, formatter.FormatCompletion(res.Plan, res.Completion))
			}
			return nil
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
