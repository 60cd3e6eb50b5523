package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/protektiq/lifeflow/internal/observability/tracing"
)

const (
	nudgeGuardKeyPrefix = "nudge:guard:"

	// nudgeGuardTTL outlives the sweep window so overlapping sweeps on
	// different instances cannot double-nudge a task.
	nudgeGuardTTL = 10 * time.Minute
)

// RedisNudgeGuard is a SETNX-based sweep guard. It is advisory; the
// notification repository's compare-and-insert remains the authority.
type RedisNudgeGuard struct {
	client *redis.Client
}

func NewRedisNudgeGuard(client *redis.Client) *RedisNudgeGuard {
	return &RedisNudgeGuard{client: client}
}

func (g *RedisNudgeGuard) Acquire(ctx context.Context, taskID uuid.UUID) (bool, error) {
	key := nudgeGuardKeyPrefix + taskID.String()

	ctx, span := tracing.StartRedisOperationSpan(ctx, "setnx", key)
	defer span.End()

	return g.client.SetNX(ctx, key, time.Now().UTC().Unix(), nudgeGuardTTL).Result()
}
