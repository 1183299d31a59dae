package domain

import "time"

// Activity is the audit and resume record of one drill session.
type Activity struct {
	ID            string
	PlanID        string
	Chapter       int
	ChapterName   string
	Target        ReviewTarget
	SessionType   SessionType
	StartTime     time.Time
	TotalReps     int
	CompletedReps int
	Completed     bool
	// DurationSec is the active drill time in seconds.
	DurationSec int
	Timestamp   time.Time
}

// Matches reports whether the activity passes the given list filter.
func (a *Activity) Matches(f ActivityFilter) bool {
	switch f {
	case FilterHafazan:
		return a.SessionType == SessionHafazan
	case FilterMurajaah:
		return a.SessionType == SessionMurajaah
	case FilterCompleted:
		return a.Completed
	case FilterIncomplete:
		return !a.Completed
	default:
		return true
	}
}

// Resumable reports whether an abandoned memorization drill can be continued.
func (a *Activity) Resumable() bool {
	return !a.Completed && a.SessionType == SessionHafazan
}
