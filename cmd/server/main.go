package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/fridayblessings411-cell/AgroTour/internal/authority"
	"github.com/fridayblessings411-cell/AgroTour/internal/ledger"
	"github.com/fridayblessings411-cell/AgroTour/internal/platform/config"
	"github.com/fridayblessings411-cell/AgroTour/internal/platform/httpserver"
	"github.com/fridayblessings411-cell/AgroTour/internal/platform/logger"
	httpmetrics "github.com/fridayblessings411-cell/AgroTour/internal/platform/metrics"
	"github.com/fridayblessings411-cell/AgroTour/internal/platform/postgres"
	redisclient "github.com/fridayblessings411-cell/AgroTour/internal/platform/redis"
	"github.com/fridayblessings411-cell/AgroTour/internal/platform/tracing"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/clock"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/handler"
	registrymetrics "github.com/fridayblessings411-cell/AgroTour/internal/registry/metrics"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/service"
	farmstore "github.com/fridayblessings411-cell/AgroTour/internal/registry/store/farm"
	settingsstore "github.com/fridayblessings411-cell/AgroTour/internal/registry/store/settings"
	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/publisher"
	kafkaaudit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/publishers/kafka"
	auditmemory "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/store/memory"
	auditpostgres "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/store/postgres"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/circuit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/metadata"
	request "github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/request"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/middleware/requesttime"
)

// farmStore is what the server needs from a farm store beyond the registry
// interface: the highest recorded height to resume the logical clock from.
type farmStore interface {
	service.FarmStore
	LatestHeight(ctx context.Context) (uint64, error)
}

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("agrotour registry stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("agrotour registry stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	tracerProvider, err := tracing.NewProvider(ctx, cfg.Tracing, nil)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(tracerProvider, cfg, log)

	var db *sql.DB
	if cfg.Postgres.URL != "" {
		db, err = postgres.Open(ctx, cfg.Postgres.URL, cfg.Postgres.MaxOpenConns)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		log.Info("using postgres stores")
	}

	var (
		farms    farmStore
		settings service.SettingsStore
	)
	if db != nil {
		farms = farmstore.NewPostgres(db)
		settings = settingsstore.NewPostgres(db)
	} else {
		farms = farmstore.NewInMemory()
		settings = settingsstore.NewInMemory()
	}

	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rc != nil {
		defer rc.Close()
	}
	oracle, err := buildOracle(ctx, cfg, rc, log)
	if err != nil {
		return err
	}

	seed, err := cfg.Ledger.Seed()
	if err != nil {
		return err
	}
	fees := ledger.NewInMemory(seed)

	auditStore, closeAudit, err := buildAuditStore(ctx, cfg, db, log)
	if err != nil {
		return err
	}
	defer closeAudit()
	events := publisher.NewPublisher(auditStore,
		publisher.WithAsyncBuffer(cfg.Audit.BufferSize),
		publisher.WithLogger(log),
	)
	defer events.Close()

	height, err := farms.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("read latest height: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registry, err := service.New(ctx, farms, settings, oracle, fees,
		service.WithLogger(log),
		service.WithAuditPublisher(events),
		service.WithMetrics(registrymetrics.New(reg)),
		service.WithTracer(tracerProvider.Tracer()),
		service.WithClock(clock.NewSequence(height)),
		service.WithMaxFarms(cfg.Registry.MaxFarms),
		service.WithRegistrationFee(cfg.Registry.RegistrationFee),
	)
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(httpmetrics.New(reg).Middleware)
	r.Get("/health", healthHandler(db, rc))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	handler.New(registry, events, log, cfg.Server.AdminToken).Register(r)

	srv := httpserver.New(cfg.Server.Addr, r, cfg.Server.ReadHeaderTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting agrotour registry", "addr", cfg.Server.Addr, "audit_sink", cfg.Audit.Sink)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildOracle returns the static allowlist, or with Redis configured, a
// cached Redis oracle that falls back to the allowlist behind a breaker.
func buildOracle(ctx context.Context, cfg *config.Config, rc *redisclient.Client, log *slog.Logger) (service.AuthorityOracle, error) {
	verified, err := cfg.Authority.Principals()
	if err != nil {
		return nil, err
	}
	static := authority.NewStaticOracle(verified...)
	if rc == nil {
		return static, nil
	}

	primary := authority.NewRedisOracle(rc.Client)
	if err := primary.Grant(ctx, verified...); err != nil {
		return nil, fmt.Errorf("seed redis authorities: %w", err)
	}
	breaker := circuit.New("authority", circuit.WithFailureThreshold(cfg.Authority.FailureThreshold))
	log.Info("using redis authority oracle", "cache_ttl", cfg.Authority.CacheTTL)
	return authority.NewFallbackOracle(
		authority.NewCachedOracle(primary, cfg.Authority.CacheTTL),
		static,
		breaker,
		log,
	), nil
}

func buildAuditStore(ctx context.Context, cfg *config.Config, db *sql.DB, log *slog.Logger) (audit.Store, func(), error) {
	switch cfg.Audit.Sink {
	case config.AuditSinkPostgres:
		return auditpostgres.New(db), func() {}, nil
	case config.AuditSinkKafka:
		store, err := kafkaaudit.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, auditmemory.NewInMemoryStore())
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureTopic(ctx, 1, 1); err != nil {
			store.Close()
			return nil, nil, err
		}
		log.Info("streaming audit events to kafka", "topic", cfg.Kafka.Topic)
		return store, store.Close, nil
	default:
		return auditmemory.NewInMemoryStore(), func() {}, nil
	}
}

func healthHandler(db *sql.DB, rc *redisclient.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if rc != nil {
			if err := rc.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func shutdownTracing(p *tracing.Provider, cfg *config.Config, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		log.Warn("tracing shutdown failed", "error", err)
	}
}
