package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pool-league/internal/config"
	"github.com/riskibarqy/pool-league/internal/domain/action"
	"github.com/riskibarqy/pool-league/internal/domain/game"
	"github.com/riskibarqy/pool-league/internal/domain/matchup"
	"github.com/riskibarqy/pool-league/internal/domain/season"
	"github.com/riskibarqy/pool-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/pool-league/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/pool-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/pool-league/internal/observability"
	basecache "github.com/riskibarqy/pool-league/internal/platform/cache"
	idgen "github.com/riskibarqy/pool-league/internal/platform/id"
	"github.com/riskibarqy/pool-league/internal/platform/logging"
	"github.com/riskibarqy/pool-league/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// App owns the HTTP server and both SQLite handles.
type App struct {
	cfg       config.Config
	logger    *logging.Logger
	server    *http.Server
	leagueDB  *sqlx.DB
	fantasyDB *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	leagueDB, err := openStore(cfg.LeagueDBPath, sqlite.StoreLeague, cfg.DBBusyTimeout, cfg.DBMigrateOnStart)
	if err != nil {
		return nil, err
	}
	fantasyDB, err := openStore(cfg.FantasyDBPath, sqlite.StoreFantasy, cfg.DBBusyTimeout, cfg.DBMigrateOnStart)
	if err != nil {
		_ = leagueDB.Close()
		return nil, err
	}
	logger.Info("sqlite stores ready",
		"league_db", cfg.LeagueDBPath,
		"fantasy_db", cfg.FantasyDBPath,
		"migrated", cfg.DBMigrateOnStart,
	)

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	var (
		actionRepo  action.Repository  = sqlite.NewActionRepository(leagueDB)
		matchupRepo matchup.Repository = sqlite.NewMatchupRepository(leagueDB)
		gameRepo    game.Repository    = sqlite.NewGameRepository(leagueDB)
		seasonRepo  season.Repository  = sqlite.NewSeasonRepository(leagueDB)
	)
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL, basecache.WithLookupObserver(metrics.CacheLookup))
		actionRepo = cache.NewActionRepository(actionRepo, store)
		matchupRepo = cache.NewMatchupRepository(matchupRepo, store)
		gameRepo = cache.NewGameRepository(gameRepo, store)
		seasonRepo = cache.NewSeasonRepository(seasonRepo, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	var recorder usecase.MetricsRecorder
	if metrics != nil {
		recorder = metrics
	}

	statsSvc := usecase.NewStatsService(
		actionRepo,
		matchupRepo,
		seasonRepo,
		sqlite.NewStandingRepository(leagueDB),
		sqlite.NewGamesPlayedRepository(leagueDB),
		logger,
	)
	handler := httpapi.NewHandler(
		usecase.NewGameService(gameRepo, matchupRepo, actionRepo, seasonRepo, recorder, logger),
		statsSvc,
		usecase.NewSeasonService(seasonRepo, logger),
		usecase.NewAwardService(sqlite.NewAwardRepository(leagueDB), logger),
		usecase.NewFantasyService(
			sqlite.NewFantasyRepository(fantasyDB),
			actionRepo,
			idgen.NewUUIDGenerator(),
			recorder,
			cfg.FantasyScoringWorkers,
			logger,
		),
		usecase.NewExportService(statsSvc),
		logger,
	)

	opts := httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
	}
	if metrics != nil {
		opts.Metrics = metrics
		opts.MetricsHandler = metrics.Handler()
	}
	if cfg.AdminToken == "" {
		logger.Warn("admin routes are open", "reason", "ADMIN_TOKEN empty")
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      httpapi.NewRouter(handler, logger, opts),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		leagueDB:  leagueDB,
		fantasyDB: fantasyDB,
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	a.logger.Info("http server stopped")
	return nil
}

// Close releases both database handles.
func (a *App) Close() error {
	return errors.Join(a.leagueDB.Close(), a.fantasyDB.Close())
}
