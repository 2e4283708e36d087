package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"nird.dev/outreach/common/id"
	"nird.dev/outreach/common/llm"
	"nird.dev/outreach/common/logger"
	"nird.dev/outreach/common/otel"
	"nird.dev/outreach/core/config"
	"nird.dev/outreach/internal/chat"
	"nird.dev/outreach/internal/http/middleware"
	httprouter "nird.dev/outreach/internal/http/router"
	"nird.dev/outreach/internal/intent"
	"nird.dev/outreach/internal/queue"
	"nird.dev/outreach/internal/security"
	"nird.dev/outreach/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger, the logger handler uses the OTel provider
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// slog is not configured yet at this point
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "outreach server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	var producer queue.Producer
	var limitStore security.RateLimitStore

	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.Stream)

		producer = queue.NewRedisProducer(redisClient, cfg.Redis.Stream, nil)
		defer producer.Close()
		limitStore = security.NewRedisStore(redisClient)
	} else {
		memStore := security.NewMemoryStore()
		defer memStore.Close()
		limitStore = memStore
	}

	limiter := security.NewRateLimiter(limitStore, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	classifier := intent.NewClassifier(
		newLLMClient(ctx, cfg.IntentLLM, "intent"),
		cfg.IntentLLM.MaxTokens,
		cfg.IntentLLM.Timeout,
	)
	responder := chat.NewResponder(
		newLLMClient(ctx, cfg.ChatLLM, "chat"),
		cfg.ChatLLM.MaxTokens,
		cfg.ChatLLM.Timeout,
	)

	services := service.NewServices(service.ServicesConfig{
		Classifier:  classifier,
		Responder:   responder,
		RateLimiter: limiter,
		Producer:    producer,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
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

// newLLMClient returns nil when no credential is configured; the classifier
// and responder treat a nil client as "fallback only".
func newLLMClient(ctx context.Context, cfg config.LLMConfig, name string) llm.Client {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "llm credential missing, using local fallback only", "llm", name)
		return nil
	}
	client, err := llm.New(llm.Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		slog.WarnContext(ctx, "llm client init failed, using local fallback only", "llm", name, "error", err)
		return nil
	}
	slog.InfoContext(ctx, "llm client ready", "llm", name, "model", client.Model())
	return client
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// OTel first so Recovery and Logger run inside the request span
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services)

	return router
}
