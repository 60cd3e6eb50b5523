package dispatch

import (
	"context"

	"github.com/protektiq/lifeflow/internal/domain"
)

//go:generate mockgen -source=dispatch.go -destination=mock.go -package=dispatch

// Dispatcher delivers a created notification to the user's devices.
// Delivery failure leaves the notification stored but undelivered.
type Dispatcher interface {
	Deliver(ctx context.Context, notification *domain.Notification) error
}
