package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hafazan/internal/cli/formatter"
)

func newMemorizeCmd(app *App) *cobra.Command {
	var planFlag string
	var verse int

	cmd := &cobra.Command{
		Use:   "memorize",
		Short: "Record an ayah as memorized and schedule its murajaah",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			plan, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}
			now := app.now()
			if err := app.Progress.MarkMemorized(ctx, plan.ID, plan.ChapterNumber, verse, now); err != nil {
				return err
			}
			fmt.Fprintf(out, "Memorized %s %s\n", plan.ChapterName, formatter.VerseRef(plan.ChapterNumber, verse))

			if plan.IsCompleted() {
				return nil
			}
			status, err := app.Plans.MarkCompleted(ctx, plan.ID, now)
			if err != nil {
				return err
			}
			if status != nil {
				fmt.Fprint(out, formatter.FormatCompletion(plan, status))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")
	cmd.Flags().IntVar(&verse, "verse", 0, "Ayah number")
	_ = cmd.MarkFlagRequired("verse")

	return cmd
}

func newReviewCmd(app *App) *cobra.Command {
	var planFlag string
	var verse, start, end int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record a completed murajaah of a range or a single ayah",
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

			now := app.now()
			if target.IsRange() {
				err = app.Progress.MarkReviewRangeComplete(ctx, plan.ID, plan.ChapterNumber, target.Start, target.End, now)
			} else {
				err = app.Progress.MarkReviewComplete(ctx, plan.ID, plan.ChapterNumber, target.Start, now)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reviewed %s %s\n", plan.ChapterName, formatter.TargetLabel(target))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")
	cmd.Flags().IntVar(&verse, "verse", 0, "Single ayah reviewed")
	cmd.Flags().IntVar(&start, "start", 0, "First ayah of the reviewed range")
	cmd.Flags().IntVar(&end, "end", 0, "Last ayah of the reviewed range")

	return cmd
}

func newRangesCmd(app *App) *cobra.Command {
	var planFlag string
	var size int

	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "List memorized review ranges and their next murajaah",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := resolvePlan(ctx, app, planFlag)
			if err != nil {
				return err
			}
			ranges, err := app.Progress.ReviewRanges(ctx, plan.ID, size)
			if err != nil {
				return err
			}
			if len(ranges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No memorized ayahs yet.")
				return nil
			}

			now := app.now()
			rows := make([]formatter.ReviewRangeRow, 0, len(ranges))
			for _, r := range ranges {
				row := formatter.ReviewRangeRow{
					Range: r,
					Next:  nextReview(plan, r.Chapter, r.Target(), now),
				}
				h, err := app.Progress.ReviewHistory(ctx, plan.ID, r.Chapter, r.Target())
				if err != nil {
					return err
				}
				if h != nil {
					row.Last = h.LastCompleted()
				}
				rows = append(rows, row)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReviewRanges(rows, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan ID or prefix (default: active plan)")
	cmd.Flags().IntVar(&size, "size", 0, "Maximum ayahs per range (default: murajaahRangeSize setting)")

	return cmd
}
