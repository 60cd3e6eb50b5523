package ingestion

import (
	"context"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

//go:generate mockgen -source=ingestion.go -destination=mock.go -package=ingestion

// Source provides the user's calendar events and actionable emails for a
// plan date. Records arrive RawTask-shaped: UTC instants resolved, the
// provider's original payload preserved, spam flags pre-annotated.
type Source interface {
	CalendarTasks(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.RawTask, error)
	EmailTasks(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.RawTask, error)
}
