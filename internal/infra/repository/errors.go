package repository

import "errors"

var (
	ErrInvalidTaskData = errors.New("invalid task data")
	ErrInvalidPlanData = errors.New("invalid plan data")
)
