package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/common/llm"
	"basegraph.app/helpdesk/common/logger"
	"basegraph.app/helpdesk/common/otel"
	"basegraph.app/helpdesk/core/config"
	"basegraph.app/helpdesk/core/db"
	"basegraph.app/helpdesk/internal/auth"
	"basegraph.app/helpdesk/internal/cache"
	"basegraph.app/helpdesk/internal/http/middleware"
	httprouter "basegraph.app/helpdesk/internal/http/router"
	"basegraph.app/helpdesk/internal/oracle"
	"basegraph.app/helpdesk/internal/queue"
	"basegraph.app/helpdesk/internal/service"
	"basegraph.app/helpdesk/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "helpdesk starting", "env", cfg.Env, "service", cfg.OTel.ServiceName, "task_mode", cfg.Tasks.Mode)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisClient := connectRedis(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	svcCfg := service.Config{
		Stores:   store.NewStores(database.Queries()),
		TxRunner: service.NewTxRunner(database),
		Oracle:   buildOracle(ctx, cfg.Oracle),
		Tokens:   auth.NewJWTIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL),
		QueueTTL: cfg.Cache.QueueTTL,
	}
	if redisClient != nil {
		svcCfg.Cache = cache.NewRedisCache(redisClient, "helpdesk:")
		if cfg.Tasks.Queued() {
			producer := queue.NewRedisProducer(redisClient, cfg.Pipeline.RedisStream, nil)
			defer producer.Close()
			svcCfg.Producer = producer
		}
	}
	services := service.NewServices(svcCfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, database)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// connectRedis returns nil when Redis is optional and unreachable. Queued
// task mode cannot run without it.
func connectRedis(ctx context.Context, cfg config.Config) *redis.Client {
	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		if cfg.Tasks.Queued() {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		slog.WarnContext(ctx, "invalid redis url, running without cache", "error", err)
		return nil
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		if cfg.Tasks.Queued() {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.WarnContext(ctx, "redis unavailable, running without cache", "error", err)
		_ = client.Close()
		return nil
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)
	return client
}

func buildOracle(ctx context.Context, cfg config.OracleConfig) oracle.Oracle {
	if !cfg.LLM.Enabled() {
		slog.InfoContext(ctx, "oracle disabled (no llm configured)")
		return oracle.NewDisabled()
	}

	client, err := llm.NewAgentClient(llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "oracle enabled", "provider", cfg.LLM.Provider, "model", client.Model())

	return oracle.New(client, oracle.Config{
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
}

func setupRouter(cfg config.Config, services *service.Services, database *db.DB) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		DB: database,
	})

	return router
}

const banner = `
 _          _           _           _
| |__   ___| |_ __   __| | ___  ___| | __
| '_ \ / _ \ | '_ \ / _' |/ _ \/ __| |/ /
| | | |  __/ | |_) | (_| |  __/\__ \   <
|_| |_|\___|_| .__/ \__,_|\___||___/_|\_\
             |_|
`
