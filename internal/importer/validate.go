package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validatePlan(&schema.Plan)...)

	memorized := make(map[int]bool)
	errs = append(errs, validateMemorized(schema.Memorized, memorized)...)
	errs = append(errs, validateReviews(schema.Reviews, memorized)...)

	return errs
}

// ValidateAgainstChapter checks verse numbers against the chapter length,
// which is only known once chapter metadata has been fetched.
func ValidateAgainstChapter(schema *ImportSchema, verseCount int) []error {
	var errs []error
	for i, m := range schema.Memorized {
		if m.Verse > verseCount {
			errs = append(errs, fmt.Errorf("memorized[%d].verse %d exceeds the chapter's %d verses", i, m.Verse, verseCount))
		}
	}
	for i, r := range schema.Reviews {
		if end := reviewEnd(r); end > verseCount {
			errs = append(errs, fmt.Errorf("reviews[%d] ends at verse %d but the chapter has %d", i, end, verseCount))
		}
	}
	return errs
}

func validatePlan(p *PlanImport) []error {
	var errs []error

	if p.Chapter < 1 || p.Chapter > domain.ChapterCount {
		errs = append(errs, fmt.Errorf("plan.chapter must be between 1 and %d (got %d)", domain.ChapterCount, p.Chapter))
	}
	if p.VersesPerDay < 1 || p.VersesPerDay > domain.MaxVersesPerDay {
		errs = append(errs, fmt.Errorf("plan.verses_per_day must be between 1 and %d (got %d)", domain.MaxVersesPerDay, p.VersesPerDay))
	}
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("plan.start_date is required"))
	} else if _, err := time.Parse(domain.DateLayout, p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("plan.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	}

	return errs
}

func validateMemorized(items []MemorizedImport, seen map[int]bool) []error {
	var errs []error

	for i, m := range items {
		prefix := fmt.Sprintf("memorized[%d]", i)
		if m.Verse < 1 {
			errs = append(errs, fmt.Errorf("%s.verse must be positive (got %d)", prefix, m.Verse))
		} else if seen[m.Verse] {
			errs = append(errs, fmt.Errorf("%s: verse %d is listed more than once", prefix, m.Verse))
		}
		seen[m.Verse] = true

		if _, err := parseWhen(m.At, time.UTC); err != nil {
			errs = append(errs, fmt.Errorf("%s.at: %w", prefix, err))
		}
	}

	return errs
}

func validateReviews(items []ReviewImport, memorized map[int]bool) []error {
	var errs []error

	for i, r := range items {
		prefix := fmt.Sprintf("reviews[%d]", i)
		end := reviewEnd(r)
		if r.Start < 1 || end < r.Start {
			errs = append(errs, fmt.Errorf("%s: invalid range %d-%d", prefix, r.Start, end))
			continue
		}
		for v := r.Start; v <= end; v++ {
			if !memorized[v] {
				errs = append(errs, fmt.Errorf("%s: verse %d is reviewed but never memorized", prefix, v))
				break
			}
		}
		if _, err := parseWhen(r.At, time.UTC); err != nil {
			errs = append(errs, fmt.Errorf("%s.at: %w", prefix, err))
		}
	}

	return errs
}

func reviewEnd(r ReviewImport) int {
	if r.End == nil {
		return r.Start
	}
	return *r.End
}

// parseWhen accepts a calendar day, read as midnight in loc, or an RFC 3339
// timestamp.
func parseWhen(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}
	if t, err := time.ParseInLocation(domain.DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}
