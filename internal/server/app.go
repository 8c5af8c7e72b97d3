// Package server wires configuration, storage, notification, audit and
// metrics into the session engine and runs the gRPC and metrics endpoints
// until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/audit"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/notify"
	"github.com/dmitrijs2005/gophauth/internal/server/obs"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/dmitrijs2005/gophauth/internal/server/shared/db"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

const metricsShutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage *db.Storage
	redis   redis.UniversalClient
	tokens  *auth.Manager
	metrics *obs.Metrics
	engine  *services.SessionService
}

// NewApp builds every dependency named by c. Logs go to out.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {

	logger := logging.NewJSONLogger(out, c.LogLevel)
	app := &App{config: c, logger: logger}

	storage, err := db.Open(ctx, c.Storage, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.storage = storage

	notifier, err := app.newNotifier()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("notifier init error: %w", err)
	}

	sink, err := app.newAuditSink(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("audit init error: %w", err)
	}

	tokens, err := auth.NewManager(c.AccessSecret, c.RefreshSecret, c.AccessTokenTTL, c.RefreshTokenTTL)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("token manager init error: %w", err)
	}
	app.tokens = tokens

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.metrics = obs.NewMetrics(reg)

	engine, err := services.NewSessionService(services.Config{
		BcryptCost:     c.BcryptCost,
		OTPTTL:         c.OTPTTL,
		OTPMaxAttempts: c.OTPMaxAttempts,
		ResetTTL:       c.ResetTokenTTL,
	}, services.Dependencies{
		Runner:   storage.Runner,
		Repos:    storage.Repos,
		Tokens:   tokens,
		Notifier: notifier,
		Audit:    sink,
		Metrics:  app.metrics,
		Logger:   logger,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("session service init error: %w", err)
	}
	app.engine = engine

	return app, nil
}

func (app *App) newNotifier() (notify.Sender, error) {
	switch app.config.Notifier {
	case config.NotifierRedis:
		app.redis = redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
		return notify.NewRedisStreamSender(app.redis, app.config.RedisStream, notify.DefaultStreamMaxLen)
	default:
		return notify.NewLogSender(app.logger), nil
	}
}

// newAuditSink always persists to storage and additionally archives to S3
// when a bucket is configured.
func (app *App) newAuditSink(ctx context.Context) (audit.Sink, error) {
	sinks := audit.Fanout{audit.NewRepositorySink(app.storage.Runner, app.storage.Repos)}

	if app.config.AuditS3Bucket != "" {
		archive, err := audit.NewS3Archive(ctx, audit.S3Config{
			Bucket:    app.config.AuditS3Bucket,
			Prefix:    app.config.AuditS3Prefix,
			Region:    app.config.AuditS3Region,
			Endpoint:  app.config.AuditS3Endpoint,
			AccessKey: app.config.AuditS3AccessKey,
			SecretKey: app.config.AuditS3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, archive)
	}

	return sinks, nil
}

// Close releases storage and Redis connections.
func (app *App) Close() {
	if app.redis != nil {
		_ = app.redis.Close()
	}
	if app.storage != nil {
		if err := app.storage.Close(); err != nil {
			app.logger.Error(context.Background(), "storage close failed", "error", err)
		}
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.engine, app.tokens, app.metrics, gs.RateLimits{
		RPS:         app.config.RateLimitRPS,
		Burst:       app.config.RateLimitBurst,
		StrictRPS:   app.config.StrictRateLimitRPS,
		StrictBurst: app.config.StrictRateLimitBurst,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())
	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives, then
// releases resources.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage, "notifier", app.config.Notifier)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()
	app.Close()

	app.logger.Info(context.Background(), "App stopped")
}
