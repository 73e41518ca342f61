package cli

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/gymsplit/notification-scheduler/internal/config"
	"github.com/gymsplit/notification-scheduler/internal/domain"
	"github.com/gymsplit/notification-scheduler/internal/infra/planfiles"
	"github.com/gymsplit/notification-scheduler/internal/infra/repository"
	"github.com/gymsplit/notification-scheduler/internal/infra/sendrecorder"
	"github.com/gymsplit/notification-scheduler/internal/observability"
	"github.com/gymsplit/notification-scheduler/internal/observability/logging"
	"github.com/gymsplit/notification-scheduler/internal/observability/metrics"
	"github.com/gymsplit/notification-scheduler/internal/render"
	"github.com/gymsplit/notification-scheduler/internal/service/rotation"
	"github.com/gymsplit/notification-scheduler/internal/service/selector"
)

// stack is everything the commands share: config, stores, the selector
// pipeline and telemetry.
type stack struct {
	cfg      *config.Config
	redis    *redis.Client
	obs      *observability.Resources
	metrics  *metrics.NotifierMetrics
	renderer *render.Renderer

	schedules domain.ScheduleRepository
	activity  domain.ActivityRepository
	selector  *selector.Service
	recorder  domain.SendRecorder
}

func newStack(ctx context.Context, serviceName string) (*stack, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logging.Setup(cfg.LogLevel)

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName: serviceName,
		Version:     rootCmd.Version,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init observability: %w", err)
	}

	notifierMetrics, err := metrics.NewNotifierMetrics()
	if err != nil {
		return nil, nil, fmt.Errorf("init metrics: %w", err)
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		return nil, nil, fmt.Errorf("instrument redis tracing: %w", err)
	}
	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		return nil, nil, fmt.Errorf("instrument redis metrics: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect redis at %s: %w", cfg.Redis.Addr, err)
	}
	slog.InfoContext(ctx, "redis connected", slog.String("addr", cfg.Redis.Addr))

	recorder, err := sendrecorder.NewRecorder(ctx, sendrecorder.LoadConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("init send recorder: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, nil, fmt.Errorf("init renderer: %w", err)
	}

	schedules := repository.NewScheduleRepository(redisClient)
	activity := repository.NewActivityRepository(redisClient)
	plans := planfiles.NewPlanRepository(cfg.DataDir)
	splits := planfiles.NewSplitRepository(cfg.DataDir)
	overrides := planfiles.NewOverrideProvider(cfg.DataDir)

	sel := selector.NewService(
		rotation.NewService(schedules),
		plans,
		splits,
		overrides,
		activity,
		cfg.Rotation.Titles,
	)

	cleanup := func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close send recorder", slog.String("error", err.Error()))
		}
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}

	return &stack{
		cfg:       cfg,
		redis:     redisClient,
		obs:       obs,
		metrics:   notifierMetrics,
		renderer:  renderer,
		schedules: schedules,
		activity:  activity,
		selector:  sel,
		recorder:  recorder,
	}, cleanup, nil
}

// resolveDate parses --date or falls back to today in the configured
// timezone.
func resolveDate(cfg *config.Config, flag string) (time.Time, error) {
	if flag == "" {
		return cfg.Today(), nil
	}
	day, err := time.ParseInLocation(domain.DateLayout, flag, cfg.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", flag)
	}
	return day, nil
}
