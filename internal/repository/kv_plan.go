package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// KVPlanRepo implements PlanRepo over the hafazan_plans document.
type KVPlanRepo struct {
	kv  KVStore
	log *slog.Logger
}

func NewKVPlanRepo(kv KVStore, log *slog.Logger) *KVPlanRepo {
	return &KVPlanRepo{kv: kv, log: log}
}

func (r *KVPlanRepo) load(ctx context.Context) (*planDocument, error) {
	doc, err := loadDocument(ctx, r.kv, r.log, KeyPlans, func() *planDocument { return &planDocument{} })
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}
	if doc == nil {
		doc = &planDocument{}
	}
	return doc, nil
}

func (r *KVPlanRepo) save(ctx context.Context, doc *planDocument) error {
	if doc.Plans == nil {
		doc.Plans = []planRecord{}
	}
	if err := saveDocument(ctx, r.kv, KeyPlans, doc); err != nil {
		return fmt.Errorf("saving plans: %w", err)
	}
	return nil
}

func (r *KVPlanRepo) decode(ctx context.Context, rec planRecord, activeID string) *domain.Plan {
	p, skipped := rec.toDomain(activeID)
	for _, err := range skipped {
		r.log.WarnContext(ctx, "skipping malformed review entry", "plan_id", rec.ID, "error", err)
	}
	return p
}

func indexOfPlan(doc *planDocument, id string) int {
	for i := range doc.Plans {
		if doc.Plans[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *KVPlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if indexOfPlan(doc, p.ID) >= 0 {
		return fmt.Errorf("plan %s already exists", p.ID)
	}
	doc.Plans = append(doc.Plans, newPlanRecord(p))
	return r.save(ctx, doc)
}

func (r *KVPlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfPlan(doc, id)
	if i < 0 {
		return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return r.decode(ctx, doc.Plans[i], doc.ActivePlanID), nil
}

// List returns plans in creation order.
func (r *KVPlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	plans := make([]*domain.Plan, 0, len(doc.Plans))
	for _, rec := range doc.Plans {
		plans = append(plans, r.decode(ctx, rec, doc.ActivePlanID))
	}
	return plans, nil
}

// Update replaces the stored plan. Plan.Active is ignored; use SetActive.
func (r *KVPlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOfPlan(doc, p.ID)
	if i < 0 {
		return fmt.Errorf("plan %s: %w", p.ID, ErrNotFound)
	}
	doc.Plans[i] = newPlanRecord(p)
	return r.save(ctx, doc)
}

func (r *KVPlanRepo) Delete(ctx context.Context, id string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOfPlan(doc, id)
	if i < 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	doc.Plans = append(doc.Plans[:i], doc.Plans[i+1:]...)
	if doc.ActivePlanID == id {
		doc.ActivePlanID = ""
	}
	return r.save(ctx, doc)
}

func (r *KVPlanRepo) ActivePlanID(ctx context.Context) (string, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	if doc.ActivePlanID != "" && indexOfPlan(doc, doc.ActivePlanID) < 0 {
		return "", nil
	}
	return doc.ActivePlanID, nil
}

func (r *KVPlanRepo) SetActive(ctx context.Context, id string) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if id != "" && indexOfPlan(doc, id) < 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	doc.ActivePlanID = id
	return r.save(ctx, doc)
}
