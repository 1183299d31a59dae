package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetKind tags the variant held by a ReviewTarget.
type TargetKind int

const (
	TargetVerse TargetKind = iota + 1
	TargetRange
)

// ReviewTarget is either a single verse (legacy review entries) or a
// contiguous verse range. Construct it with SingleVerse or VerseRange.
type ReviewTarget struct {
	Kind  TargetKind
	Start int
	End   int
}

// SingleVerse builds a target for one verse.
func SingleVerse(verse int) ReviewTarget {
	return ReviewTarget{Kind: TargetVerse, Start: verse, End: verse}
}

// VerseRange builds a target covering start..end inclusive.
func VerseRange(start, end int) ReviewTarget {
	return ReviewTarget{Kind: TargetRange, Start: start, End: end}
}

func (t ReviewTarget) IsRange() bool {
	return t.Kind == TargetRange
}

// Contains reports whether verse lies inside the target.
func (t ReviewTarget) Contains(verse int) bool {
	return verse >= t.Start && verse <= t.End
}

// Size returns the number of verses covered.
func (t ReviewTarget) Size() int {
	if t.End < t.Start {
		return 0
	}
	return t.End - t.Start + 1
}

func (t ReviewTarget) Validate() error {
	if t.Start < 1 || t.End < t.Start {
		return fmt.Errorf("%w: %d-%d", ErrInvalidRange, t.Start, t.End)
	}
	if t.Kind == TargetVerse && t.Start != t.End {
		return fmt.Errorf("%w: single verse target spans %d-%d", ErrInvalidRange, t.Start, t.End)
	}
	return nil
}

// String renders "7" for a single verse and "5-9" for a range.
func (t ReviewTarget) String() string {
	if t.Kind == TargetVerse {
		return strconv.Itoa(t.Start)
	}
	return fmt.Sprintf("%d-%d", t.Start, t.End)
}

// RangeKey identifies the review history of one target within a plan.
type RangeKey struct {
	PlanID  string
	Chapter int
	Target  ReviewTarget
}

// String renders the persisted key: plan_chapter_start_end for ranges and
// plan_chapter_verse for single verses.
func (k RangeKey) String() string {
	if k.Target.Kind == TargetVerse {
		return fmt.Sprintf("%s_%d_%d", k.PlanID, k.Chapter, k.Target.Start)
	}
	return fmt.Sprintf("%s_%d_%d_%d", k.PlanID, k.Chapter, k.Target.Start, k.Target.End)
}

// ParseRangeKey is the inverse of RangeKey.String. Numeric segments are read
// from the right so plan IDs may themselves contain underscores.
func ParseRangeKey(s string) (RangeKey, error) {
	parts := strings.Split(s, "_")
	nums := make([]int, 0, 3)
	i := len(parts) - 1
	for ; i > 0 && len(nums) < 3; i-- {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			break
		}
		nums = append([]int{n}, nums...)
	}
	planID := strings.Join(parts[:i+1], "_")
	switch {
	case planID == "":
		return RangeKey{}, fmt.Errorf("parsing range key %q: missing plan id", s)
	case len(nums) == 2:
		return RangeKey{PlanID: planID, Chapter: nums[0], Target: SingleVerse(nums[1])}, nil
	case len(nums) == 3:
		return RangeKey{PlanID: planID, Chapter: nums[0], Target: VerseRange(nums[1], nums[2])}, nil
	default:
		return RangeKey{}, fmt.Errorf("parsing range key %q: expected 2 or 3 numeric segments", s)
	}
}
