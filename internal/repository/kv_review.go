package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// KVReviewRepo implements ReviewRepo over the hafazan_murajaah document.
type KVReviewRepo struct {
	kv  KVStore
	log *slog.Logger
}

func NewKVReviewRepo(kv KVStore, log *slog.Logger) *KVReviewRepo {
	return &KVReviewRepo{kv: kv, log: log}
}

func (r *KVReviewRepo) load(ctx context.Context) (murajaahDocument, error) {
	doc, err := loadDocument(ctx, r.kv, r.log, KeyMurajaah, func() murajaahDocument { return murajaahDocument{} })
	if err != nil {
		return nil, fmt.Errorf("loading review history: %w", err)
	}
	if doc == nil {
		doc = murajaahDocument{}
	}
	return doc, nil
}

func (r *KVReviewRepo) save(ctx context.Context, doc murajaahDocument) error {
	if err := saveDocument(ctx, r.kv, KeyMurajaah, doc); err != nil {
		return fmt.Errorf("saving review history: %w", err)
	}
	return nil
}

func (r *KVReviewRepo) Get(ctx context.Context, key domain.RangeKey) (*domain.ReviewHistory, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := doc[key.String()]
	if !ok {
		return nil, fmt.Errorf("review history %s: %w", key, ErrNotFound)
	}
	return rec.toDomain(key), nil
}

func (r *KVReviewRepo) ListByPlan(ctx context.Context, planID string) (map[string]*domain.ReviewHistory, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.ReviewHistory)
	for raw, rec := range doc {
		key, err := domain.ParseRangeKey(raw)
		if err != nil {
			r.log.WarnContext(ctx, "skipping malformed review key", "key", raw, "error", err)
			continue
		}
		if key.PlanID == planID {
			out[key.String()] = rec.toDomain(key)
		}
	}
	return out, nil
}

// AppendSession creates the history on first completion.
func (r *KVReviewRepo) AppendSession(ctx context.Context, key domain.RangeKey, s domain.ReviewSession) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	rec := doc[key.String()]
	rec.Sessions = append(rec.Sessions, newSessionRecord(key, s))
	doc[key.String()] = rec
	return r.save(ctx, doc)
}

func (r *KVReviewRepo) DeleteByPlan(ctx context.Context, planID string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for raw := range doc {
		if key, err := domain.ParseRangeKey(raw); err == nil && key.PlanID == planID {
			delete(doc, raw)
		}
	}
	return r.save(ctx, doc)
}
