// Command userd serves the user account API.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/userd/auth/password"
	"github.com/skillsenselab/userd/auth/token"
	"github.com/skillsenselab/userd/config"
	apperrors "github.com/skillsenselab/userd/errors"
	"github.com/skillsenselab/userd/logger"
	"github.com/skillsenselab/userd/observability"
	"github.com/skillsenselab/userd/ratelimit"
	"github.com/skillsenselab/userd/server"
	"github.com/skillsenselab/userd/server/middleware"
	"github.com/skillsenselab/userd/store"
	"github.com/skillsenselab/userd/user"
	"github.com/skillsenselab/userd/util"
	"github.com/skillsenselab/userd/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "userd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Version == "dev" {
		cfg.Version = version.Short()
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()
	log.Info("Starting userd", logger.Fields(
		"version", cfg.Version,
		"environment", cfg.Environment,
	))

	if cfg.Observability.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Observability.TracerConfig(cfg.Name, cfg.Version, cfg.Environment))
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()

		mp, err := observability.InitMeter(ctx, cfg.Observability.MeterConfig(cfg.Name, cfg.Version, cfg.Environment))
		if err != nil {
			return fmt.Errorf("init meter: %w", err)
		}
		defer func() { _ = mp.Shutdown(context.Background()) }()
	}

	st := store.NewMemoryStore()
	hasher := password.NewHasher(cfg.Password)
	codec, err := token.NewCodec(&cfg.Token)
	if err != nil {
		return err
	}
	log.Debug("Token codec configured", logger.Fields(
		"issuer", cfg.Token.Issuer,
		"audience", cfg.Token.Audience,
		"ttl", cfg.Token.TTL.String(),
		"signing_key", util.MaskSecret(cfg.Token.Secret, 4),
	))
	loginLimiter := ratelimit.New(cfg.LoginRateLimit)
	defer loginLimiter.Close()

	responder := server.NewResponder(log, cfg.Debug)
	srv := server.New(cfg.Server, log)
	engine := srv.GinEngine()

	respond := middleware.ErrorWriter(responder.Error)
	engine.Use(
		middleware.Recovery(respond),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORS(&cfg.Server.CORS),
		middleware.BodySizeLimit(cfg.Server.MaxBodySize),
	)
	if cfg.Observability.Enabled {
		engine.Use(middleware.Telemetry())
	}

	engine.NoRoute(func(c *gin.Context) {
		responder.Error(c, apperrors.NotFound("route"))
	})
	engine.GET("/", func(c *gin.Context) {
		responder.Message(c, "userd is up", gin.H{"version": cfg.Version})
	})
	engine.GET("/health", healthHandler(cfg, st))

	routes := &user.Routes{
		Handler:      user.NewHandler(st, hasher, codec, responder, log),
		Codec:        codec,
		LoginLimiter: loginLimiter,
		Responder:    responder,
	}
	routes.Register(engine)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("Received shutdown signal", logger.Fields("signal", sig.String()))

	return srv.Stop(ctx)
}

func healthHandler(cfg *config.Config, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := observability.NewServiceHealth(cfg.Name, cfg.Version)
		health.Check(c.Request.Context(), checkers...)

		status := http.StatusOK
		if health.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
