package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// KVActivityRepo implements ActivityRepo over the hafazan_activities document.
type KVActivityRepo struct {
	kv  KVStore
	log *slog.Logger
}

func NewKVActivityRepo(kv KVStore, log *slog.Logger) *KVActivityRepo {
	return &KVActivityRepo{kv: kv, log: log}
}

func (r *KVActivityRepo) load(ctx context.Context) ([]activityRecord, error) {
	recs, err := loadDocument(ctx, r.kv, r.log, KeyActivities, func() []activityRecord { return nil })
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	return recs, nil
}

func (r *KVActivityRepo) save(ctx context.Context, recs []activityRecord) error {
	if recs == nil {
		recs = []activityRecord{}
	}
	if err := saveDocument(ctx, r.kv, KeyActivities, recs); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	return nil
}

func (r *KVActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(recs, newActivityRecord(a)))
}

func (r *KVActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return nil, fmt.Errorf("activity %s: %w", id, ErrNotFound)
}

func (r *KVActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].ID == a.ID {
			recs[i] = newActivityRecord(a)
			return r.save(ctx, recs)
		}
	}
	return fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
}

func (r *KVActivityRepo) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Activity
	for _, rec := range recs {
		a := rec.toDomain()
		if a.Matches(filter) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *KVActivityRepo) DeleteByPlan(ctx context.Context, planID string) error {
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := recs[:0]
	for _, rec := range recs {
		if rec.PlanID != planID {
			kept = append(kept, rec)
		}
	}
	return r.save(ctx, kept)
}
