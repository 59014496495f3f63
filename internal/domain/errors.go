package domain

import "errors"

var (
	// ErrAddsUnavailable indicates the host reports neither add nor update
	// cart capability, so the add feature is disabled entirely.
	ErrAddsUnavailable = errors.New("cart adds unavailable")

	// ErrAddInFlight indicates an add for the same variant has not finished.
	ErrAddInFlight = errors.New("add already in flight")
)
