package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hafazan/internal/cli/formatter"
	"github.com/alexanderramin/hafazan/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change drill and murajaah settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := app.Settings.Get(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
				return nil
			},
		},
		&cobra.Command{
			Use:       "set KEY VALUE",
			Short:     "Change one setting, e.g. general.murajaahFrequency 3",
			Long:      "Change one setting. Keys:\n  " + strings.Join(domain.SettingKeys, "\n  "),
			Args:      cobra.ExactArgs(2),
			ValidArgs: domain.SettingKeys,
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := app.Settings.Set(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := app.Settings.Reset(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
				return nil
			},
		},
	)

	return cmd
}

func newReadCmd(app *App) *cobra.Command {
	var chapter, start, end int
	var planFlag string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print the text and translation of ayahs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if chapter == 0 {
				plan, err := resolvePlan(ctx, app, planFlag)
				if err != nil {
					return fmt.Errorf("--chapter is required without an active plan: %w", err)
				}
				chapter = plan.ChapterNumber
			}
			if end == 0 {
				end = start
			}

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			stop := app.spin(cmd.ErrOrStderr(), "Fetching ayahs...")
			text, err := app.Content.SessionText(ctx, chapter, start, end)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionText(text, settings.General.ShowTranslation))
			return nil
		},
	}

	cmd.Flags().IntVar(&chapter, "chapter", 0, "Surah number (default: the active plan's surah)")
	cmd.Flags().StringVar(&planFlag, "plan", "", "Plan whose surah to read when --chapter is not set")
	cmd.Flags().IntVar(&start, "start", 0, "First ayah")
	cmd.Flags().IntVar(&end, "end", 0, "Last ayah (default: --start)")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
