package repository

import (
	"log/slog"

	"github.com/alexanderramin/hafazan/internal/db"
)

// Repos groups the collection repositories that share one connection or
// transaction.
type Repos struct {
	Plans      PlanRepo
	Progress   ProgressRepo
	Reviews    ReviewRepo
	Settings   SettingsRepo
	Activities ActivityRepo
}

// NewKVRepos builds every repository over the kv table reachable through
// conn. Pass the tx handed to UnitOfWork.WithinTx to scope them to it.
func NewKVRepos(conn db.DBTX, log *slog.Logger) Repos {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	kv := NewSQLiteKVStore(conn)
	return Repos{
		Plans:      NewKVPlanRepo(kv, log),
		Progress:   NewKVProgressRepo(kv, log),
		Reviews:    NewKVReviewRepo(kv, log),
		Settings:   NewKVSettingsRepo(kv, log),
		Activities: NewKVActivityRepo(kv, log),
	}
}
