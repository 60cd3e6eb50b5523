package config

import (
	"os"
)

const (
	plannerURLEnv             = "PLANNER_URL"
	plannerPrimaryProfileEnv  = "PLANNER_PRIMARY_PROFILE"
	plannerFallbackProfileEnv = "PLANNER_FALLBACK_PROFILE"

	defaultPrimaryProfile  = "daily-planner"
	defaultFallbackProfile = "daily-planner-lite"
)

type PlannerConfig struct {
	URL             string
	PrimaryProfile  string
	FallbackProfile string
}

func LoadPlannerConfig() *PlannerConfig {
	primary := os.Getenv(plannerPrimaryProfileEnv)
	if primary == "" {
		primary = defaultPrimaryProfile
	}

	fallback := os.Getenv(plannerFallbackProfileEnv)
	if fallback == "" {
		fallback = defaultFallbackProfile
	}

	return &PlannerConfig{
		URL:             os.Getenv(plannerURLEnv),
		PrimaryProfile:  primary,
		FallbackProfile: fallback,
	}
}

func (c *PlannerConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrPlannerURLMissing
	}
	return nil
}
