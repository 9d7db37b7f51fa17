package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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
	"basegraph.app/helpdesk/internal/oracle"
	"basegraph.app/helpdesk/internal/queue"
	"basegraph.app/helpdesk/internal/service"
	"basegraph.app/helpdesk/internal/store"
	"basegraph.app/helpdesk/internal/worker"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "helpdesk worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Pipeline.RedisGroup,
		"consumer_name", cfg.Pipeline.RedisConsumer)

	// Different node id than the server so snowflakes never collide
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Pipeline.RedisStream,
		Group:        cfg.Pipeline.RedisGroup,
		Consumer:     cfg.Pipeline.RedisConsumer,
		DLQStream:    cfg.Pipeline.RedisDLQStream,
		BatchSize:    10,
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Pipeline.MaxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	// Tasks always run inline here. The worker never re-enqueues its own work.
	services := service.NewServices(service.Config{
		Stores:   store.NewStores(database.Queries()),
		TxRunner: service.NewTxRunner(database),
		Oracle:   buildOracle(ctx, cfg.Oracle),
		Tokens:   auth.NewJWTIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL),
	})

	w := worker.New(consumer, services.TaskHandler(), worker.Config{
		MaxAttempts: cfg.Pipeline.MaxAttempts,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Pipeline.RedisStream,
		Group:     cfg.Pipeline.RedisGroup,
		Consumer:  cfg.Pipeline.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  time.Minute,
		BatchSize: 10,
	}, consumer, w.HandleMessage)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		reclaimer.Run(gctx)
		return nil
	})

	slog.InfoContext(ctx, "worker initialized and running")

	<-gctx.Done()
	slog.InfoContext(ctx, "shutting down worker...")

	reclaimer.Stop()
	w.Stop()

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

func buildOracle(ctx context.Context, cfg config.OracleConfig) oracle.Oracle {
	if !cfg.LLM.Enabled() {
		slog.WarnContext(ctx, "oracle disabled (no llm configured), automations will decline")
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

	return oracle.New(client, oracle.Config{
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
}

const banner = `
 _          _           _           _                           _
| |__   ___| |_ __   __| | ___  ___| | __ __      _____  _ __| | _____ _ __
| '_ \ / _ \ | '_ \ / _' |/ _ \/ __| |/ / \ \ /\ / / _ \| '__| |/ / _ \ '__|
| | | |  __/ | |_) | (_| |  __/\__ \   <   \ V  V / (_) | |  |   <  __/ |
|_| |_|\___|_| .__/ \__,_|\___||___/_|\_\   \_/\_/ \___/|_|  |_|\_\___|_|
             |_|
`
