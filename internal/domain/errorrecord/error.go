package errorrecord

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidDate   = errors.New("invalid error_date")
	ErrInvalidCount  = errors.New("invalid error_count")
	ErrNegativeCount = errors.New("negative error_count")
)
