package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// KVProgressRepo implements ProgressRepo over the hafazan_progress document.
type KVProgressRepo struct {
	kv  KVStore
	log *slog.Logger
}

func NewKVProgressRepo(kv KVStore, log *slog.Logger) *KVProgressRepo {
	return &KVProgressRepo{kv: kv, log: log}
}

func (r *KVProgressRepo) load(ctx context.Context) (progressDocument, error) {
	doc, err := loadDocument(ctx, r.kv, r.log, KeyProgress, func() progressDocument { return progressDocument{} })
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	if doc == nil {
		doc = progressDocument{}
	}
	return doc, nil
}

// all decodes every record, dropping keys that do not parse.
func (r *KVProgressRepo) all(ctx context.Context) ([]domain.VerseProgress, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.VerseProgress, 0, len(doc))
	for key, rec := range doc {
		p, err := rec.toDomain(key)
		if err != nil {
			r.log.WarnContext(ctx, "skipping malformed progress record", "key", key, "error", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Upsert writes the record, overwriting any earlier one for the same verse.
func (r *KVProgressRepo) Upsert(ctx context.Context, p domain.VerseProgress) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	day := p.Day
	if day == "" {
		day = domain.DayKey(p.MemorizedAt)
	}
	doc[progressKey(p.PlanID, p.Chapter, p.Verse)] = progressRecord{
		Memorized:   p.Memorized,
		MemorizedAt: p.MemorizedAt,
		Date:        day,
		Type:        string(domain.SessionHafazan),
	}
	if err := saveDocument(ctx, r.kv, KeyProgress, doc); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

func (r *KVProgressRepo) Get(ctx context.Context, planID string, chapter, verse int) (*domain.VerseProgress, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	key := progressKey(planID, chapter, verse)
	rec, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("progress %s: %w", key, ErrNotFound)
	}
	p, err := rec.toDomain(key)
	if err != nil {
		return nil, fmt.Errorf("decoding progress %s: %w", key, err)
	}
	return &p, nil
}

// ListByPlan returns an unordered snapshot of the plan's records.
func (r *KVProgressRepo) ListByPlan(ctx context.Context, planID string) ([]domain.VerseProgress, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.VerseProgress
	for _, p := range all {
		if p.PlanID == planID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *KVProgressRepo) ListAll(ctx context.Context) (map[string][]domain.VerseProgress, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.VerseProgress)
	for _, p := range all {
		out[p.PlanID] = append(out[p.PlanID], p)
	}
	return out, nil
}

func (r *KVProgressRepo) DeleteByPlan(ctx context.Context, planID string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for key := range doc {
		if k, err := domain.ParseRangeKey(key); err == nil && k.PlanID == planID {
			delete(doc, key)
		}
	}
	if err := saveDocument(ctx, r.kv, KeyProgress, doc); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}
