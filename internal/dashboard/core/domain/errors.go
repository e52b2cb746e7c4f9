package domain

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoData           = errors.New("no data")
	ErrUnknownMetric    = errors.New("unknown metric")
)
