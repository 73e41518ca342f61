package domain

import "errors"

var (
	ErrSplitNotFound     = errors.New("split not found")
	ErrMalformedOverride = errors.New("malformed weekly override entry")
	ErrPlanNotFound      = errors.New("plan not found")
)
