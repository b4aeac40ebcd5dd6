// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskboard-sync/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/taskboard-sync/internal/adapters/notify"
	redisadapter "github.com/jsamuelsen11/taskboard-sync/internal/adapters/redis"
	"github.com/jsamuelsen11/taskboard-sync/internal/app"
	"github.com/jsamuelsen11/taskboard-sync/internal/dnd"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/config"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/health"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard-sync/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard-sync/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	movesDrainTimeout     = 10 * time.Second
	redisCloseTimeout     = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.TaskClient](injector))
	var publisher *redisadapter.Publisher
	if cfg.Redis.Enabled {
		publisher = do.MustInvoke[*redisadapter.Publisher](injector)
		registry.Register(publisher)
	}

	boards := do.MustInvoke[*app.BoardService](injector)
	if len(cfg.Board.PreloadWorkspaces) > 0 {
		if err := boards.Preload(ctx, cfg.Board.PreloadWorkspaces, cfg.Board.PreloadWorkers); err != nil {
			// A workspace that failed to preload is loaded again on first access.
			logger.Warn("board preload incomplete", slog.Any("error", err))
		}
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Let in-flight moves settle so their outcome reaches the task API.
	movesCtx, movesCancel := context.WithTimeout(context.Background(), movesDrainTimeout)
	defer movesCancel()

	if err := boards.Wait(movesCtx); err != nil {
		logger.Error("pending moves did not settle", slog.Any("error", err))
	}

	if publisher != nil {
		redisCtx, redisCancel := context.WithTimeout(context.Background(), redisCloseTimeout)
		defer redisCancel()

		if err := publisher.Close(redisCtx); err != nil {
			logger.Error("redis publisher close error", slog.Any("error", err))
		}
		if err := do.MustInvoke[goredis.UniversalClient](injector).Close(); err != nil {
			logger.Error("redis client close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "task-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TaskClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTaskClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (goredis.UniversalClient, error) {
		return goredis.NewUniversalClient(&goredis.UniversalOptions{
			Addrs:    []string{cfg.Redis.Addr},
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*redisadapter.Publisher, error) {
		client := do.MustInvoke[goredis.UniversalClient](i)
		return redisadapter.NewPublisher(client, cfg.Redis.ChannelPrefix, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.EventHub, error) {
		return handlers.NewEventHub(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.BoardService, error) {
		taskClient := do.MustInvoke[*acl.TaskClient](i)
		hub := do.MustInvoke[*handlers.EventHub](i)

		notifiers := notify.Multi{notify.NewLogNotifier(logger), hub}
		var listeners []ports.BoardListener
		if cfg.Redis.Enabled {
			publisher := do.MustInvoke[*redisadapter.Publisher](i)
			notifiers = append(notifiers, publisher)
			listeners = append(listeners, publisher)
		}

		opts := app.BoardOptions{
			PersistTimeout: cfg.Board.PersistTimeout,
			Collision:      dnd.Strategy(cfg.Board.Collision),
			Sensors:        sensorsFromConfig(cfg.Board.Sensors),
			Metrics:        do.MustInvoke[*telemetry.Metrics](i),
		}
		return app.NewBoardService(taskClient, taskClient, notifiers, opts, logger, listeners...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return do.MustInvoke[*app.BoardService](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		return handlers.NewBoardHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DragHandler, error) {
		return handlers.NewDragHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EventsHandler, error) {
		svc := do.MustInvoke[ports.BoardService](i)
		hub := do.MustInvoke[*handlers.EventHub](i)
		return handlers.NewEventsHandler(svc, hub, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		dragH := do.MustInvoke[*handlers.DragHandler](i)
		eventsH := do.MustInvoke[*handlers.EventsHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(boardH, dragH, eventsH, healthH, cfg.Server.RequestTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// sensorsFromConfig overlays the configured activation constraints on the
// stock sensors. Keyboard codes are not configurable.
func sensorsFromConfig(sc config.SensorConfig) dnd.Sensors {
	sensors := dnd.DefaultSensors()
	sensors.Pointer.Distance = sc.PointerDistance
	sensors.Touch.Delay = sc.TouchDelay
	sensors.Touch.Tolerance = sc.TouchTolerance
	return sensors
}
