package gentext

import (
	"context"
)

//go:generate mockgen -source=gentext.go -destination=mock.go -package=gentext

// Generator produces short free-form text (nudge personalization, action
// steps). Callers always carry a deterministic fallback and treat errors
// as a signal to use it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
