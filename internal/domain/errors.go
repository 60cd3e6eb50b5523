package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationExists   = errors.New("active notification already exists for task")
	ErrInvalidEnergyLevel   = errors.New("energy level must be between 1 and 5")
	ErrInvalidTimeWindow    = errors.New("task end time precedes start time")
)
