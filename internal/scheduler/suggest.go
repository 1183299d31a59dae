package scheduler

import "github.com/alexanderramin/hafazan/internal/domain"

// Suggestion is a chapter recommended after finishing a plan.
type Suggestion struct {
	Chapter int
	Name    string
	Reason  string
}

var (
	afterShort = []Suggestion{
		{2, "Al-Baqarah", "Next challenge: The longest Surah"},
		{18, "Al-Kahf", "Popular Friday recitation"},
		{36, "Ya-Sin", "Heart of the Quran"},
	}
	afterMedium = []Suggestion{
		{67, "Al-Mulk", "Protection from grave punishment"},
		{55, "Ar-Rahman", "The Most Merciful"},
	}
	afterLong = []Suggestion{
		{112, "Al-Ikhlas", "Equal to 1/3 of Quran"},
		{113, "Al-Falaq", "Protection from evil"},
		{114, "An-Nas", "Protection from whispers"},
	}
)

const maxSuggestions = 3

// SuggestNext recommends chapters by the length of the one just finished.
func SuggestNext(totalVerses int) []Suggestion {
	var src []Suggestion
	switch {
	case totalVerses <= 10:
		src = afterShort
	case totalVerses <= 50:
		src = afterMedium
	default:
		src = afterLong
	}
	out := make([]Suggestion, min(len(src), maxSuggestions))
	copy(out, src)
	return out
}

// NextSteps is shown once a plan is complete.
type NextSteps struct {
	CanCreateNewPlan    bool
	HasOtherActivePlans bool
	Suggestions         []Suggestion
	MurajaahContinues   bool
	Achievement         domain.AchievementLevel
}

// ComputeNextSteps returns nil when the plan is not yet complete.
func ComputeNextSteps(plan *domain.Plan, status CompletionStatus, others []domain.Plan) *NextSteps {
	if !status.Completed {
		return nil
	}
	steps := &NextSteps{
		CanCreateNewPlan:  true,
		Suggestions:       SuggestNext(plan.TotalVerses),
		MurajaahContinues: true,
		Achievement:       Achievement(status.DaysEarly),
	}
	for i := range others {
		if others[i].ID != plan.ID && others[i].Active {
			steps.HasOtherActivePlans = true
			break
		}
	}
	return steps
}
