package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level
	Postgres    *PostgresConfig
	Redis       *RedisConfig
	Planner     *PlannerConfig
	Services    *ServicesConfig
	Pipeline    *PipelineConfig
	Nudge       *NudgeConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: environment,
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		Postgres:    LoadPostgresConfig(),
		Redis:       redisConfig,
		Planner:     LoadPlannerConfig(),
		Services:    LoadServicesConfig(),
		Pipeline:    LoadPipelineConfig(),
		Nudge:       LoadNudgeConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
