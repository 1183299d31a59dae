package importer

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// EventKind tells a replayed event apart.
type EventKind int

const (
	EventMemorized EventKind = iota
	EventReviewed
)

// Event is one memorization or review to replay against a new plan.
type Event struct {
	Kind   EventKind
	Target domain.ReviewTarget
	At     time.Time
}

// Converted is a validated import ready to be replayed.
type Converted struct {
	Chapter      int
	StartDate    time.Time
	VersesPerDay int
	// Events are in chronological order; memorization sorts before a
	// review at the same instant.
	Events []Event
}

// MemorizedCount returns how many verses the import marks memorized.
func (c *Converted) MemorizedCount() int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == EventMemorized {
			n++
		}
	}
	return n
}

// Convert transforms a validated ImportSchema into a replay script. Calendar
// days are read in loc. Call ValidateImportSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ImportSchema, loc *time.Location) (*Converted, error) {
	start, err := time.ParseInLocation(domain.DateLayout, schema.Plan.StartDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}

	out := &Converted{
		Chapter:      schema.Plan.Chapter,
		StartDate:    start,
		VersesPerDay: schema.Plan.VersesPerDay,
		Events:       make([]Event, 0, len(schema.Memorized)+len(schema.Reviews)),
	}

	for _, m := range schema.Memorized {
		at, err := parseWhen(m.At, loc)
		if err != nil {
			return nil, fmt.Errorf("verse %d: %w", m.Verse, err)
		}
		out.Events = append(out.Events, Event{Kind: EventMemorized, Target: domain.SingleVerse(m.Verse), At: at})
	}

	for _, r := range schema.Reviews {
		at, err := parseWhen(r.At, loc)
		if err != nil {
			return nil, fmt.Errorf("review %d: %w", r.Start, err)
		}
		target := domain.SingleVerse(r.Start)
		if r.End != nil {
			target = domain.VerseRange(r.Start, *r.End)
		}
		out.Events = append(out.Events, Event{Kind: EventReviewed, Target: target, At: at})
	}

	sort.SliceStable(out.Events, func(i, j int) bool {
		a, b := out.Events[i], out.Events[j]
		if !a.At.Equal(b.At) {
			return a.At.Before(b.At)
		}
		return a.Kind < b.Kind
	})

	return out, nil
}
