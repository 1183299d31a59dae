package service

import "errors"

var (
	// ErrPlanNotFound is returned where a caller needs to tell a missing plan
	// apart from an empty result.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrNoActivePlan is returned by Resolve when no plan ID is given and
	// none is active.
	ErrNoActivePlan = errors.New("no active plan; pass a plan ID or run 'plan use'")

	// ErrAmbiguousPlan is returned by Resolve when an ID prefix matches
	// more than one plan.
	ErrAmbiguousPlan = errors.New("plan ID prefix matches more than one plan")

	// ErrDuplicatePlan indicates a plan already exists for the chapter.
	ErrDuplicatePlan = errors.New("a plan already exists for this chapter")

	// ErrInvalidImport wraps the list of problems found in an import file.
	ErrInvalidImport = errors.New("import validation failed")

	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityCompleted is returned when mutating a finished drill.
	ErrActivityCompleted = errors.New("activity already completed")
)
