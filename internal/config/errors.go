package config

import "errors"

var (
	ErrRedisAddrMissing        = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB          = errors.New("REDIS_DB must be a valid integer")
	ErrPostgresUserMissing     = errors.New("POSTGRES_USER is required")
	ErrPostgresDatabaseMissing = errors.New("POSTGRES_DB is required")
	ErrPlannerURLMissing       = errors.New("PLANNER_URL is required")
	ErrIngestionURLMissing     = errors.New("INGESTION_URL is required")
	ErrDispatchURLMissing      = errors.New("DISPATCH_URL is required")
)
