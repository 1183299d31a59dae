package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// ErrNotFound is returned (wrapped) when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// KVStore persists named JSON documents.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
	// ActivePlanID returns "" when no plan is active.
	ActivePlanID(ctx context.Context) (string, error)
	// SetActive replaces the active plan; "" clears it.
	SetActive(ctx context.Context, id string) error
}

type ProgressRepo interface {
	Upsert(ctx context.Context, p domain.VerseProgress) error
	Get(ctx context.Context, planID string, chapter, verse int) (*domain.VerseProgress, error)
	ListByPlan(ctx context.Context, planID string) ([]domain.VerseProgress, error)
	ListAll(ctx context.Context) (map[string][]domain.VerseProgress, error)
	DeleteByPlan(ctx context.Context, planID string) error
}

type ReviewRepo interface {
	Get(ctx context.Context, key domain.RangeKey) (*domain.ReviewHistory, error)
	// ListByPlan returns histories keyed by RangeKey.String.
	ListByPlan(ctx context.Context, planID string) (map[string]*domain.ReviewHistory, error)
	AppendSession(ctx context.Context, key domain.RangeKey, s domain.ReviewSession) error
	DeleteByPlan(ctx context.Context, planID string) error
}

type SettingsRepo interface {
	// Get returns DefaultSettings when nothing has been saved.
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	// List returns matching activities newest first.
	List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error)
	DeleteByPlan(ctx context.Context, planID string) error
}
