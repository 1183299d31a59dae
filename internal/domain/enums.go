package domain

type PlanStatus string

const (
	PlanInProgress PlanStatus = "in_progress"
	PlanCompleted  PlanStatus = "completed"
)

// SessionType distinguishes first-time memorization from review drills.
type SessionType string

const (
	SessionHafazan  SessionType = "hafazan"
	SessionMurajaah SessionType = "murajaah"
)

// ValidSessionTypes is the canonical set of accepted session type strings.
var ValidSessionTypes = map[string]bool{
	"hafazan": true, "murajaah": true,
}

type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseHidden  Phase = "hidden"
)

type AchievementLevel string

const (
	AchievementExceptional AchievementLevel = "exceptional"
	AchievementExcellent   AchievementLevel = "excellent"
	AchievementGreat       AchievementLevel = "great"
	AchievementGood        AchievementLevel = "good"
	AchievementCompleted   AchievementLevel = "completed"
)

type ActivityFilter string

const (
	FilterAll        ActivityFilter = "all"
	FilterHafazan    ActivityFilter = "hafazan"
	FilterMurajaah   ActivityFilter = "murajaah"
	FilterCompleted  ActivityFilter = "completed"
	FilterIncomplete ActivityFilter = "incomplete"
)

// ValidActivityFilters is the canonical set of accepted activity filter strings.
var ValidActivityFilters = map[string]bool{
	"all": true, "hafazan": true, "murajaah": true,
	"completed": true, "incomplete": true,
}
