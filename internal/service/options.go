package service

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/repository"
)

// Option configures a service.
type Option func(*base)

// WithClock replaces time.Now, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLogger sets the logger handed to transaction-scoped repositories.
func WithLogger(log *slog.Logger) Option {
	return func(b *base) {
		if log != nil {
			b.log = log
		}
	}
}

// WithObservers installs the first non-nil observer.
func WithObservers(observers ...UseCaseObserver) Option {
	return func(b *base) {
		b.observer = useCaseObserverOrNoop(observers)
	}
}

// base carries what every service shares: read repositories, the unit of
// work for writes, and the ambient clock, logger and observer.
type base struct {
	repos    repository.Repos
	uow      db.UnitOfWork
	now      func() time.Time
	log      *slog.Logger
	observer UseCaseObserver
}

func newBase(repos repository.Repos, uow db.UnitOfWork, opts []Option) base {
	b := base{
		repos:    repos,
		uow:      uow,
		now:      time.Now,
		log:      slog.New(slog.DiscardHandler),
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// txRepos scopes fresh repositories to tx.
func (b *base) txRepos(tx db.DBTX) repository.Repos {
	return repository.NewKVRepos(tx, b.log)
}
