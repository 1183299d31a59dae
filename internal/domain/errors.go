package domain

import "errors"

var (
	// ErrInvalidChapter indicates a chapter number outside 1..114.
	ErrInvalidChapter = errors.New("chapter number must be between 1 and 114")

	// ErrInvalidPace indicates a verses-per-day value outside 1..10.
	ErrInvalidPace = errors.New("verses per day must be between 1 and 10")

	// ErrInvalidRange indicates a verse range whose bounds are out of order or non-positive.
	ErrInvalidRange = errors.New("invalid verse range")
)

// ChapterCount is the number of chapters in the Quran.
const ChapterCount = 114

// MaxVersesPerDay bounds the pace a learner can choose when creating a plan.
const MaxVersesPerDay = 10
