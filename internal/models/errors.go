package models

import "errors"

// Domain error taxonomy. Services and repos return these (possibly wrapped);
// handlers map them onto HTTP statuses. Storage driver errors must be
// translated before they leave the models package.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("not authorized")
	ErrCapacityExceeded = errors.New("event is fully booked")
	ErrValidation       = errors.New("validation failed")
)
