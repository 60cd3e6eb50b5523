package planner

import (
	"context"
)

//go:generate mockgen -source=planner.go -destination=mock.go -package=planner

// Service is the generative planning collaborator. Propose may return a
// structured task list or prose wrapping one; callers own extraction.
type Service interface {
	Propose(ctx context.Context, profile string, req *Request) (*Proposal, error)
}
