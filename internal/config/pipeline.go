package config

import (
	"os"
	"strconv"
)

const (
	emailIngestionEnabledEnv = "EMAIL_INGESTION_ENABLED"
	planWorkerConcurrencyEnv = "PLAN_WORKER_CONCURRENCY"
	planGenerationHourEnv    = "PLAN_GENERATION_HOUR"

	defaultPlanWorkerConcurrency = 4
	defaultPlanGenerationHour    = 5
)

type PipelineConfig struct {
	EmailIngestionEnabled bool
	WorkerConcurrency     int
	GenerationHour        int
}

func LoadPipelineConfig() *PipelineConfig {
	concurrency := defaultPlanWorkerConcurrency
	if v := os.Getenv(planWorkerConcurrencyEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	generationHour := defaultPlanGenerationHour
	if v := os.Getenv(planGenerationHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < 24 {
			generationHour = parsed
		}
	}

	return &PipelineConfig{
		EmailIngestionEnabled: os.Getenv(emailIngestionEnabledEnv) == "true",
		WorkerConcurrency:     concurrency,
		GenerationHour:        generationHour,
	}
}
