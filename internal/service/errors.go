package service

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order has no items")
	ErrQuantityInvalid = errors.New("quantity must be > 0")
	// ErrCancelled means the user backed out before the explicit save;
	// nothing was persisted.
	ErrCancelled = errors.New("cancelled")
)
