// Package cli wires the WiseBook services together behind a small
// read–eval–print loop.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/wisebook/wisebook/internal/accounts"
	"github.com/wisebook/wisebook/internal/catalog"
	"github.com/wisebook/wisebook/internal/config"
	"github.com/wisebook/wisebook/internal/logging"
	"github.com/wisebook/wisebook/internal/recommend"
	"github.com/wisebook/wisebook/internal/state"
	"github.com/wisebook/wisebook/internal/storage"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	store    *storage.Store
	accounts *accounts.Service
	catalog  *catalog.Service
	engine   *recommend.Engine
	state    *state.Store
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := storage.NewStore(db, log)
	dir := accounts.NewDirectory(store)
	accountService := accounts.NewService(dir, store, log)
	catalogService := catalog.NewService(cfg.APIDelay, log)

	// Provider order is the fallback order. The AI tier only exists when a
	// key is configured; its absence is a fully supported mode.
	providers := make([]recommend.Provider, 0, 3)
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, recommend.NewAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, log))
	}
	providers = append(providers, &recommend.HeuristicProvider{}, &recommend.BasicProvider{})

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		store:    store,
		accounts: accountService,
		catalog:  catalogService,
		engine:   recommend.NewEngine(log, providers...),
		state:    state.New(store),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run seeds the demo accounts, restores any prior session, and hands
// control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.accounts.SeedDemoAccounts(ctx); err != nil {
		a.log.Warn(ctx, "demo account seeding failed", "error", err)
	}
	a.state.Hydrate(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.state.User() != nil
}

func (a *App) status() string {
	if user := a.state.User(); user != nil {
		return user.Name
	}
	return "guest"
}
