package services

import "errors"

var (
	ErrEmptyOrder     = errors.New("order needs at least one item")
	ErrBadQuantity    = errors.New("quantity must be at least 1")
	ErrTableNotFound  = errors.New("table not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrStatusConflict = errors.New("status changed concurrently")
	ErrNameRequired   = errors.New("name is required")
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrBadCredentials = errors.New("invalid credentials")
)
