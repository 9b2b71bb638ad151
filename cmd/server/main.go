package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/healthtrend/backend/internal/advisor"
	"github.com/healthtrend/backend/internal/analysis"
	"github.com/healthtrend/backend/internal/delivery/http"
	"github.com/healthtrend/backend/internal/llm"
	"github.com/healthtrend/backend/internal/recommend"
	"github.com/healthtrend/backend/internal/repository/postgres"
	"github.com/healthtrend/backend/internal/service"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Configuration
	cfg := loadConfig()
	setupLogger(cfg)
	if envErr != nil {
		log.Info().Msg("No .env file found, using system environment")
	}

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := connectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("Could not connect to database, running with demo data only")
	} else {
		defer pool.Close()
		log.Info().Msg("Connected to PostgreSQL")
	}

	// Dependency Injection: Repositories
	var healthRepo service.HealthRepository
	if pool != nil {
		healthRepo = postgres.NewPostgresRepository(pool)
	} else {
		healthRepo = postgres.NewMockRepository()
	}

	// Dependency Injection: Advisor
	var adv advisor.Advisor
	client, err := llm.NewFromConfig(cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		log.Warn().Msg("No LLM credentials configured, recommendations will use fallback rules")
	case err != nil:
		log.Warn().Err(err).Msg("LLM client unavailable, recommendations will use fallback rules")
	default:
		log.Info().Str("model", client.Model()).Msg("LLM advisor enabled")
		if bridge, ok := client.(*llm.Bridge); ok {
			if err := bridge.Health(ctx); err != nil {
				log.Warn().Err(err).Msg("Advisor bridge is not responding yet")
			}
		}
		adv = advisor.NewLLMAdvisor(client)
	}

	// Dependency Injection: Services
	orchestrator := recommend.NewOrchestrator(adv, recommend.WithTimeout(cfg.AdvisorTimeout))
	engine := analysis.NewEngine(orchestrator)
	analysisSvc := service.NewAnalysisService(healthRepo, engine)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "HealthTrend API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AdvisorTimeout + 10*time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, analysisSvc)

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Str("recommendations", orchestrator.String()).Msg("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

type Config struct {
	DatabaseURL    string
	Port           string
	Env            string
	LogLevel       string
	AdvisorTimeout time.Duration
	LLM            llm.Config
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GO_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AdvisorTimeout: getDuration("ADVISOR_TIMEOUT", recommend.DefaultTimeout),
		LLM: llm.Config{
			Provider:        getEnv("LLM_PROVIDER", ""),
			ClaudeModel:     getEnv("CLAUDE_MODEL", ""),
			OpenAIModel:     getEnv("OPENAI_MODEL", ""),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
			BridgeURL:       getEnv("ADVISOR_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func setupLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	zerolog.DefaultContextLogger = &log.Logger
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
