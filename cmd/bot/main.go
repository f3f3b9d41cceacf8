package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"italiano/internal/assistant"
	"italiano/internal/config"
	"italiano/internal/handler"
	"italiano/internal/metrics"
	"italiano/internal/middleware"
	"italiano/internal/repository/memory"
	"italiano/internal/service"
	"italiano/internal/vocabulary"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logger
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	logger, err := zapConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("Starting Italiano Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return 1
	}
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logger.Warn("Unknown log level, keeping info", zap.String("level", cfg.LogLevel))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("timezone", cfg.Location().String()),
		zap.Bool("assistant", cfg.AssistantEnabled()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize storage
	vocab := vocabulary.NewStore(nil)
	state := memory.NewStateRepo()

	// Initialize assistant
	gateway := newGateway(ctx, cfg, m, logger)

	// Initialize services
	clock := service.NewClock(cfg.Location())
	wordService := service.NewWordService(vocab, state, clock)
	tutorService := service.NewTutorService(gateway, state, clock, logger)
	statsService := service.NewStatsService(state, m, logger)

	// Initialize Telegram bot
	poller := handler.NewConflictPoller(cfg.PollTimeout, logger)
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: poller,
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Error("Failed to create bot", zap.Error(err))
		return 1
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Initialize handler
	dispatcher := handler.NewDispatcher(wordService, tutorService, statsService, m, logger)
	h := handler.NewHandler(ctx, bot, dispatcher, logger)
	bot.Use(middleware.LoggingMiddleware(m, logger))
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	if cfg.MetricsAddr != "" {
		go startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	// Start stats job in background
	go runStatsJob(ctx, statsService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal or a polling conflict
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	code := 0
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping bot...")
	case err := <-poller.Conflict():
		logger.Error("Stopping: another instance is running with this token", zap.Error(err))
		code = 1
	}

	// Graceful shutdown
	cancel()
	bot.Stop()

	logger.Info("Bot stopped", zap.Int("exit_code", code))
	return code
}

// newGateway creates the assistant gateway, disabled when no API key is set
func newGateway(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *assistant.Gateway {
	if !cfg.AssistantEnabled() {
		logger.Warn("OPENAI_API_KEY not set, assistant features are disabled")
		return assistant.NewGateway(nil, cfg.OpenAI.Timeout, m, logger)
	}

	provider, err := assistant.NewOpenAIProvider(assistant.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Warn("Failed to create assistant provider, features disabled", zap.Error(err))
		return assistant.NewGateway(nil, cfg.OpenAI.Timeout, m, logger)
	}

	gateway := assistant.NewGateway(provider, cfg.OpenAI.Timeout, m, logger)
	if err := gateway.Ping(ctx); err != nil {
		logger.Warn("Assistant connection test failed", zap.Error(err))
	} else {
		logger.Info("Assistant connection OK", zap.String("model", provider.ModelID()))
	}
	return gateway
}

// startMetricsServer serves Prometheus metrics until ctx is done
func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()

	logger.Info("Metrics server started", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Metrics server error", zap.Error(err))
	}
}

// runStatsJob periodically reports how many users have state
func runStatsJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stats job stopped")
			return
		case <-ticker.C:
			statsService.ReportUsers()
		}
	}
}
