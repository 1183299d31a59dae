package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

const monthLayout = "2006-01"

// resolvePlan resolves a --plan flag value. Empty selects the active plan;
// otherwise a full ID or a unique ID prefix is accepted.
func resolvePlan(ctx context.Context, app *App, ref string) (*domain.Plan, error) {
	return app.Plans.Resolve(ctx, strings.TrimSpace(ref))
}

// resolveActivityID expands a unique activity ID prefix to the full ID.
func resolveActivityID(ctx context.Context, app *App, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("activity ID is required")
	}
	all, err := app.Activities.List(ctx, domain.FilterAll)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, a := range all {
		if a.ID == ref {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, ref) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity prefix %q matches %d activities", ref, len(matches))
	}
}

// parseDay parses YYYY-MM-DD as midnight in the clock's location. Empty
// input yields the zero time.
func parseDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseInLocation(domain.DateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// parseMonth parses YYYY-MM. Empty input selects the month of now.
func parseMonth(s string, now time.Time) (int, time.Month, error) {
	if s == "" {
		return now.Year(), now.Month(), nil
	}
	m, err := time.Parse(monthLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return m.Year(), m.Month(), nil
}

// targetFromFlags builds a review target from --verse or --start/--end.
func targetFromFlags(verse, start, end int) (domain.ReviewTarget, error) {
	switch {
	case verse > 0 && (start > 0 || end > 0):
		return domain.ReviewTarget{}, fmt.Errorf("use either --verse or --start/--end, not both")
	case verse > 0:
		return domain.SingleVerse(verse), nil
	case start > 0:
		if end == 0 {
			end = start
		}
		t := domain.VerseRange(start, end)
		return t, t.Validate()
	default:
		return domain.ReviewTarget{}, fmt.Errorf("--verse or --start is required")
	}
}
