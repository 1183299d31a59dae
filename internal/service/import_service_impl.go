package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/importer"
	"github.com/alexanderramin/hafazan/internal/quran"
	"github.com/alexanderramin/hafazan/internal/repository"
)

type importService struct {
	base
	content quran.Client
}

func NewImportService(repos repository.Repos, content quran.Client, uow db.UnitOfWork, opts ...Option) ImportService {
	return &importService{base: newBase(repos, uow, opts), content: content}
}

func (s *importService) ImportPlan(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlanFromSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (res *ImportResult, err error) {
	startedAt := s.now()
	fields := map[string]any{"chapter": schema.Plan.Chapter}
	defer func() {
		s.observe(ctx, "import-plan", startedAt, fields, err)
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	meta, err := s.content.Chapter(ctx, schema.Plan.Chapter)
	if err != nil {
		return nil, fmt.Errorf("fetching chapter %d: %w", schema.Plan.Chapter, err)
	}
	if errs := importer.ValidateAgainstChapter(schema, meta.VerseCount); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	now := s.now()
	converted, err := importer.Convert(schema, now.Location())
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	plan, err := buildPlan(meta, converted.StartDate, converted.VersesPerDay, now)
	if err != nil {
		return nil, err
	}
	fields["plan_id"] = plan.ID
	res = &ImportResult{Plan: plan}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		if err := insertPlan(ctx, r, plan); err != nil {
			return err
		}

		// Each event is applied as of its own time so the review schedule
		// ends up as it would have been recorded live.
		var lastMemorized time.Time
		for _, ev := range converted.Events {
			switch ev.Kind {
			case importer.EventMemorized:
				if err := memorize(ctx, r, plan, plan.ChapterNumber, ev.Target.Start, ev.At, ev.At); err != nil {
					return err
				}
				res.Memorized++
				lastMemorized = ev.At
			case importer.EventReviewed:
				if err := completeReview(ctx, r, plan, plan.ChapterNumber, ev.Target, ev.At, ev.At); err != nil {
					return err
				}
				res.Reviews++
			}
		}

		if lastMemorized.IsZero() {
			return nil
		}
		st, err := closeIfComplete(ctx, r, plan, lastMemorized)
		if err != nil {
			return fmt.Errorf("closing completed plan: %w", err)
		}
		res.Completion = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["memorized"] = res.Memorized
	fields["reviews"] = res.Reviews
	return res, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%w (%d errors):%s", ErrInvalidImport, len(errs), b.String())
}
