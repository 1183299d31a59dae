package scheduler

import (
	"sort"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// MergeRanges groups memorized verses into maximal runs of consecutive verse
// numbers. Verses of different chapters never share a run. The result is a
// pure function of the memorized set: input order does not matter.
//
// Work is O(n log n) in the number of records; callers recompute from
// scratch on every mutation because out-of-order completion (catch-up) can
// shift range boundaries.
func MergeRanges(progress []domain.VerseProgress) []domain.MemorizedRange {
	verses := make([]domain.VerseProgress, 0, len(progress))
	for _, p := range progress {
		if p.Memorized {
			verses = append(verses, p)
		}
	}
	if len(verses) == 0 {
		return nil
	}

	sort.SliceStable(verses, func(i, j int) bool {
		if verses[i].Chapter != verses[j].Chapter {
			return verses[i].Chapter < verses[j].Chapter
		}
		return verses[i].Verse < verses[j].Verse
	})

	var ranges []domain.MemorizedRange
	current := domain.MemorizedRange{
		Chapter: verses[0].Chapter,
		Start:   verses[0].Verse,
		End:     verses[0].Verse,
		Verses:  []domain.VerseProgress{verses[0]},
	}
	for _, v := range verses[1:] {
		if v.Chapter == current.Chapter && v.Verse == current.End {
			// Duplicate record for the same verse; keep the first.
			continue
		}
		if v.Chapter == current.Chapter && v.Verse == current.End+1 {
			current.End = v.Verse
			current.Verses = append(current.Verses, v)
			continue
		}
		ranges = append(ranges, current)
		current = domain.MemorizedRange{
			Chapter: v.Chapter,
			Start:   v.Verse,
			End:     v.Verse,
			Verses:  []domain.VerseProgress{v},
		}
	}
	return append(ranges, current)
}

// SplitRanges subdivides every range wider than maxSize into maxSize-wide
// chunks in verse order; the last chunk holds the remainder.
func SplitRanges(ranges []domain.MemorizedRange, maxSize int) []domain.MemorizedRange {
	if maxSize < 1 {
		maxSize = 1
	}
	out := make([]domain.MemorizedRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Size() <= maxSize {
			out = append(out, r)
			continue
		}
		for start := r.Start; start <= r.End; start += maxSize {
			end := min(start+maxSize-1, r.End)
			chunk := domain.MemorizedRange{Chapter: r.Chapter, Start: start, End: end}
			for _, v := range r.Verses {
				if v.Verse >= start && v.Verse <= end {
					chunk.Verses = append(chunk.Verses, v)
				}
			}
			out = append(out, chunk)
		}
	}
	return out
}

// ReviewRanges merges memorized verses and bounds each range by maxSize.
func ReviewRanges(progress []domain.VerseProgress, maxSize int) []domain.MemorizedRange {
	return SplitRanges(MergeRanges(progress), maxSize)
}

// FindRange returns the range holding verse of chapter.
func FindRange(ranges []domain.MemorizedRange, chapter, verse int) (domain.MemorizedRange, bool) {
	for _, r := range ranges {
		if r.Contains(chapter, verse) {
			return r, true
		}
	}
	return domain.MemorizedRange{}, false
}
