package repository

import "errors"

var (
	ErrInvalidScheduleData = errors.New("invalid schedule data")
	ErrInvalidActivityData = errors.New("invalid activity data")
	ErrInvalidPlanData     = errors.New("invalid custom plan data")
)
