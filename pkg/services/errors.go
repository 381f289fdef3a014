package services

import "errors"

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrQuotaExhausted is returned when a free-tier user has no daily
	// checks left
	ErrQuotaExhausted = errors.New("daily quota exhausted")
)
