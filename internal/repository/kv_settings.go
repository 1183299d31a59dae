package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/hafazan/internal/domain"
)

// KVSettingsRepo implements SettingsRepo over the hafazan_settings document.
type KVSettingsRepo struct {
	kv  KVStore
	log *slog.Logger
}

func NewKVSettingsRepo(kv KVStore, log *slog.Logger) *KVSettingsRepo {
	return &KVSettingsRepo{kv: kv, log: log}
}

// Get decodes over the defaults, so fields absent from the stored document
// keep their default values.
func (r *KVSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	doc, err := loadDocument(ctx, r.kv, r.log, KeySettings, func() settingsDocument {
		return newSettingsDocument(domain.DefaultSettings())
	})
	if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *KVSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	if err := saveDocument(ctx, r.kv, KeySettings, newSettingsDocument(s)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
