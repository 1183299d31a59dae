package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/domain"
	"github.com/alexanderramin/hafazan/internal/repository"
)

type settingsService struct {
	base
}

func NewSettingsService(repos repository.Repos, uow db.UnitOfWork, opts ...Option) SettingsService {
	return &settingsService{base: newBase(repos, uow, opts)}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.repos.Settings.Get(ctx)
}

func (s *settingsService) Save(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.txRepos(tx).Settings.Save(ctx, settings)
	})
}

func (s *settingsService) Set(ctx context.Context, key, value string) (out domain.Settings, err error) {
	startedAt := s.now()
	defer func() {
		s.observe(ctx, "set-setting", startedAt, map[string]any{"key": key}, err)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := s.txRepos(tx)
		current, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		if err := current.Apply(key, value); err != nil {
			return err
		}
		if err := current.Validate(); err != nil {
			return fmt.Errorf("invalid settings: %w", err)
		}
		if err := r.Settings.Save(ctx, current); err != nil {
			return err
		}
		out = current
		return nil
	})
	if err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}

func (s *settingsService) Reset(ctx context.Context) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := s.Save(ctx, defaults); err != nil {
		return domain.Settings{}, err
	}
	return defaults, nil
}
