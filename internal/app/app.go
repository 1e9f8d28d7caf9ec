package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/ksarapp/ksar-backend/internal/adapter/postgres"
	activityrepo "github.com/ksarapp/ksar-backend/internal/adapter/postgres/activity"
	aidtyperepo "github.com/ksarapp/ksar-backend/internal/adapter/postgres/aidtype"
	"github.com/ksarapp/ksar-backend/internal/adapter/postgres/caseaidtype"
	caserepo "github.com/ksarapp/ksar-backend/internal/adapter/postgres/casefile"
	historyrepo "github.com/ksarapp/ksar-backend/internal/adapter/postgres/history"
	noterepo "github.com/ksarapp/ksar-backend/internal/adapter/postgres/note"
	personrepo "github.com/ksarapp/ksar-backend/internal/adapter/postgres/person"
	"github.com/ksarapp/ksar-backend/internal/adapter/redis"
	"github.com/ksarapp/ksar-backend/internal/adapter/redis/catalogcache"
	"github.com/ksarapp/ksar-backend/internal/config"
	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/internal/metrics"
	"github.com/ksarapp/ksar-backend/internal/service/activity"
	"github.com/ksarapp/ksar-backend/internal/service/aidtype"
	"github.com/ksarapp/ksar-backend/internal/service/association"
	"github.com/ksarapp/ksar-backend/internal/service/casefile"
	"github.com/ksarapp/ksar-backend/internal/service/history"
	"github.com/ksarapp/ksar-backend/internal/service/note"
	"github.com/ksarapp/ksar-backend/internal/service/person"
	"github.com/ksarapp/ksar-backend/internal/transport/rest"
)

const txRetryDelay = 50 * time.Millisecond

// Services groups the business services exposed to transports.
type Services struct {
	Cases        *casefile.Service
	Associations *association.Service
	History      *history.Service
	Activity     *activity.Service
	People       *person.Service
	AidTypes     *aidtype.Service
	Notes        *note.Service
}

// App owns the process-wide resources: the database pool, the optional
// Redis client, metrics and the services built on top of them.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Metrics  *metrics.Metrics
	Pool     *pgxpool.Pool
	Services Services

	redis *goredis.Client
	cache *catalogcache.Cache
}

// New connects to PostgreSQL (and Redis when configured), applies migrations
// if database.auto_migrate is set, and wires every service.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Metrics: metrics.New(),
		Pool:    pool,
	}

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		log.Info("migrations applied", slog.Int("count", applied))
	}

	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.redis = client
		a.cache = catalogcache.New(client, cfg.Redis.CacheTTL)
	}

	a.Services = a.buildServices()

	return a, nil
}

func (a *App) buildServices() Services {
	txm := postgres.NewTxManager(a.Pool, postgres.WithRetry(a.Config.Database.TxRetries, txRetryDelay))

	cases := caserepo.New(a.Pool)
	people := personrepo.New(a.Pool)
	aidTypes := aidtyperepo.New(a.Pool)
	links := caseaidtype.New(a.Pool)
	histories := historyrepo.New(a.Pool)
	notes := noterepo.New(a.Pool)

	ledger := activity.NewService(a.Log, activityrepo.New(a.Pool), txm, a.Metrics)

	// A typed nil *catalogcache.Cache would defeat the service's nil check.
	var cache interface {
		Get(ctx context.Context) ([]domain.AidType, bool, error)
		Set(ctx context.Context, list []domain.AidType) error
		Invalidate(ctx context.Context) error
	}
	if a.cache != nil {
		cache = a.cache
	}

	return Services{
		Cases:        casefile.NewService(a.Log, a.Config.Cases, a.Metrics, cases, people, aidTypes, links, histories, ledger, txm),
		Associations: association.NewService(a.Log, a.Config.Cases, a.Metrics, cases, aidTypes, links, ledger, txm),
		History:      history.NewService(a.Log, histories, cases, txm),
		Activity:     ledger,
		People:       person.NewService(a.Log, people, ledger, txm),
		AidTypes:     aidtype.NewService(a.Log, a.Metrics, aidTypes, cache, ledger, txm),
		Notes:        note.NewService(a.Log, a.Config.Cases, notes, cases, ledger, txm),
	}
}

// Handler returns the operational HTTP handler: probes and metrics.
func (a *App) Handler() http.Handler {
	checks := []rest.Check{{Name: "database", Pinger: a.Pool}}
	if a.cache != nil {
		checks = append(checks, rest.Check{Name: "redis", Pinger: a.cache, Optional: true})
	}
	health := rest.NewHealthHandler(BuildVersion(), checks...)

	var metricsHandler http.Handler
	if a.Config.Metrics.Enabled {
		metricsHandler = a.Metrics.Handler()
	}

	return rest.NewRouter(a.Log, health, metricsHandler, a.Config.Metrics.Path)
}

// Serve runs the operational HTTP server until ctx is cancelled, then shuts
// it down within server.shutdown_timeout.
func (a *App) Serve(ctx context.Context) error {
	cfg := a.Config.Server
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      a.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		a.Log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases the Redis client and the database pool.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Log.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	a.Pool.Close()
}

// Run is the server entry point: it loads configuration, builds the App and
// serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := NewLogger(cfg.Log)
	log.Info("starting ksar",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("strict_transitions", cfg.Cases.StrictTransitions),
		slog.Bool("cache", cfg.Redis.Enabled()),
	)

	a, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
