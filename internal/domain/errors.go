package domain

import "errors"

var (
	ErrInvalidQuery    = errors.New("invalid query")
	ErrDataUnavailable = errors.New("travel data not available")
	ErrNotFound        = errors.New("not found")
)
