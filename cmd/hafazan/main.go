package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/hafazan/internal/cli"
	"github.com/alexanderramin/hafazan/internal/config"
	"github.com/alexanderramin/hafazan/internal/db"
	"github.com/alexanderramin/hafazan/internal/quran"
	"github.com/alexanderramin/hafazan/internal/repository"
	"github.com/alexanderramin/hafazan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if cfg.NoColor || !stdoutTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repos := repository.NewKVRepos(database, logger)
	uow := db.NewSQLiteUnitOfWork(database)

	var fetchObserver quran.Observer = quran.NoopObserver{}
	opts := []service.Option{service.WithLogger(logger)}
	if cfg.LogCalls {
		fetchObserver = quran.NewLogObserver(os.Stderr)
		opts = append(opts, service.WithObservers(service.NewLogUseCaseObserver(os.Stderr)))
	}
	content := quran.NewHTTPClient(cfg.Content, fetchObserver)

	app := &cli.App{
		Plans:      service.NewPlanService(repos, content, uow, opts...),
		Progress:   service.NewProgressService(repos, uow, opts...),
		Tasks:      service.NewTaskService(repos, uow, opts...),
		Analytics:  service.NewAnalyticsService(repos, uow, opts...),
		Activities: service.NewActivityService(repos, uow, opts...),
		Settings:   service.NewSettingsService(repos, uow, opts...),
		Content:    service.NewContentService(content),
		Import:     service.NewImportService(repos, content, uow, opts...),
	}

	// Spinners draw on stderr, so only animate when it is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
