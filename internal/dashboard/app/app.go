package app

import (
	"context"
	"github.com/google/uuid"
	"github.com/langowen/fxdash/deploy/config"
	"github.com/langowen/fxdash/internal/dashboard/adapter/api_client/rateservice"
	"github.com/langowen/fxdash/internal/dashboard/adapter/storage/memory"
	"github.com/langowen/fxdash/internal/dashboard/adapter/storage/postgres"
	"github.com/langowen/fxdash/internal/dashboard/adapter/storage/redis"
	"github.com/langowen/fxdash/internal/dashboard/orchestrator"
	"github.com/langowen/fxdash/internal/dashboard/ports/http/public"
	"github.com/langowen/fxdash/internal/dashboard/preferences"
	"github.com/langowen/fxdash/internal/dashboard/session"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	redisPack "github.com/redis/go-redis/v9"
	"log"
	"log/slog"
	"os"
	"time"
)

const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type DashboardApp struct {
	cfg        *config.Config
	instanceID string
	closers    []func()
}

func NewDashboardApp(cfg *config.Config) *DashboardApp {
	return &DashboardApp{
		cfg:        cfg,
		instanceID: uuid.NewString(),
	}
}

func (a *DashboardApp) Start(ctx context.Context) <-chan struct{} {
	a.initLogger()
	slog.Info("Logger initialized")

	slog.Info("starting dashboard", "instance", a.instanceID, "backend", a.cfg.Preferences.Backend, "rate_service", a.cfg.RateService.URL)

	prefs := a.initPreferences(ctx)
	slog.Info("Preferences initialized", "theme", prefs.Get().Theme, "language", prefs.Get().Language)

	client := a.initRateClient()
	slog.Info("Rate service client initialized")

	sessions := a.initSessions(ctx, client)
	slog.Info("Session registry initialized")

	serverDone := a.StartServer(ctx, sessions, prefs)
	slog.Info("server started", "port", a.cfg.HTTPServer.Port)

	done := make(chan struct{})
	go func() {
		<-serverDone
		for i := len(a.closers) - 1; i >= 0; i-- {
			a.closers[i]()
		}
		close(done)
	}()

	return done
}

func (a *DashboardApp) initLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     a.cfg.Log.SlogLevel(),
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

func (a *DashboardApp) initPreferences(ctx context.Context) *preferences.Store {
	defaults := a.preferenceDefaults()

	switch a.cfg.Preferences.Backend {
	case BackendRedis:
		rdStorage := a.initRedis(ctx)
		prefs := preferences.Load(ctx, rdStorage, defaults)
		a.syncPreferences(ctx, prefs, rdStorage)
		return prefs
	case BackendPostgres:
		return preferences.Load(ctx, a.initDatabase(ctx), defaults)
	case BackendMemory:
		return preferences.Load(ctx, memory.NewStorage(), defaults)
	default:
		log.Fatalln("Unknown preferences backend", a.cfg.Preferences.Backend)
		return nil
	}
}

func (a *DashboardApp) preferenceDefaults() entities.Preferences {
	defaults := entities.DefaultPreferences()

	if theme, err := entities.ParseTheme(a.cfg.Preferences.DefaultTheme); err == nil {
		defaults.Theme = theme
	} else {
		slog.Warn("invalid default theme, using light", "value", a.cfg.Preferences.DefaultTheme)
	}

	if lang, err := entities.ParseLanguage(a.cfg.Preferences.DefaultLanguage); err == nil {
		defaults.Language = lang
	} else {
		slog.Warn("invalid default language, using en", "value", a.cfg.Preferences.DefaultLanguage)
	}

	return defaults
}

func (a *DashboardApp) initDatabase(ctx context.Context) *postgres.Storage {
	pgStorage, pool, err := postgres.InitStorage(ctx, a.cfg.Storage.DSN(), a.cfg.Storage.Timeout)
	if err != nil {
		log.Fatalln("Failed to initialize PostgresSQL storage", "error", err)
	}

	a.closers = append(a.closers, pool.Close)

	return pgStorage
}

func (a *DashboardApp) initRedis(ctx context.Context) *redis.Storage {
	options := &redisPack.Options{
		Addr:     a.cfg.Redis.Host,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	}

	rdStorage, err := redis.InitStorage(ctx, options, a.cfg.Redis.Prefix)
	if err != nil {
		log.Fatalln("Failed to initialize Redis storage", "error", err)
	}

	a.closers = append(a.closers, func() {
		if err := rdStorage.Close(); err != nil {
			slog.Error("Failed to close redis client", "error", err)
		}
	})

	return rdStorage
}

// syncPreferences publishes local changes and applies the ones made by
// other instances.
func (a *DashboardApp) syncPreferences(ctx context.Context, prefs *preferences.Store, rdStorage *redis.Storage) {
	prefs.Subscribe(func(c preferences.Change) {
		if c.Remote {
			return
		}

		value := string(c.Preferences.Theme)
		if c.Key == entities.PrefKeyLanguage {
			value = string(c.Preferences.Language)
		}

		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		update := entities.PreferenceUpdate{Key: c.Key, Value: value, Origin: a.instanceID}
		if err := rdStorage.PublishUpdate(pubCtx, update); err != nil {
			slog.Error("Failed to publish preference update", "key", c.Key, "error", err)
		}
	})

	go func() {
		for {
			err := rdStorage.ListenUpdates(ctx, func(u entities.PreferenceUpdate) {
				if u.Origin == a.instanceID {
					return
				}
				if err := prefs.Apply(u.Key, u.Value); err != nil {
					slog.Warn("Ignoring preference update", "key", u.Key, "value", u.Value, "error", err)
				}
			})
			if ctx.Err() != nil {
				return
			}

			slog.Error("Preference listener stopped, resubscribing", "error", err)

			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
	}()
}

func (a *DashboardApp) initRateClient() *rateservice.Client {
	metrics := rateservice.NewMetrics(prometheus.DefaultRegisterer)

	return rateservice.NewClient(a.cfg.RateService.URL, rateservice.WithMetrics(metrics))
}

func (a *DashboardApp) initSessions(ctx context.Context, client orchestrator.RateClient) *session.Registry {
	d := a.cfg.Dashboard

	defaults := orchestrator.Defaults{
		From:   entities.NewCurrencyCode(d.DefaultFrom),
		To:     entities.NewCurrencyCode(d.DefaultTo),
		Amount: d.DefaultAmount,
		Range:  entities.Range(d.DefaultRange).Normalize(),
	}

	factory := func() *orchestrator.Orchestrator {
		return orchestrator.New(client, orchestrator.WithDefaults(defaults))
	}

	registry := session.NewRegistry(factory, d.SessionIdleTTL, session.WithRegisterer(prometheus.DefaultRegisterer))

	go registry.Run(ctx, d.SweepInterval)

	return registry
}

func (a *DashboardApp) StartServer(ctx context.Context, sessions *session.Registry, prefs *preferences.Store) <-chan struct{} {
	serverDone := public.StartServer(ctx, sessions, prefs, a.cfg)

	return serverDone
}
