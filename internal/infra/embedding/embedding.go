package embedding

import (
	"context"

	"github.com/protektiq/lifeflow/internal/domain"
)

//go:generate mockgen -source=embedding.go -destination=mock.go -package=embedding

// Store persists task context embeddings for later retrieval. Encoding is
// best-effort: callers log failures and continue.
type Store interface {
	StoreTaskContext(ctx context.Context, task *domain.RawTask) error
}
