package config

import (
	"os"
	"strconv"
	"time"
)

const (
	nudgeSweepIntervalEnv = "NUDGE_SWEEP_INTERVAL_MINUTES"
	nudgeWindowEnv        = "NUDGE_WINDOW_MINUTES"
	nudgeDisabledEnv      = "NUDGE_DISABLED"

	defaultNudgeSweepIntervalMinutes = 5
	defaultNudgeWindowMinutes        = 5
)

type NudgeConfig struct {
	Disabled      bool
	SweepInterval time.Duration
	Window        time.Duration
}

func LoadNudgeConfig() *NudgeConfig {
	sweepInterval := defaultNudgeSweepIntervalMinutes
	if v := os.Getenv(nudgeSweepIntervalEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sweepInterval = parsed
		}
	}

	window := defaultNudgeWindowMinutes
	if v := os.Getenv(nudgeWindowEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			window = parsed
		}
	}

	return &NudgeConfig{
		Disabled:      os.Getenv(nudgeDisabledEnv) == "true",
		SweepInterval: time.Duration(sweepInterval) * time.Minute,
		Window:        time.Duration(window) * time.Minute,
	}
}
