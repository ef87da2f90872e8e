package utils

import "errors"

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrPlanningFailed     = errors.New("trip planning failed")
)
