package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrInvalidCourtCount = errors.New("court count must be at least 1")
	ErrAutoCapacity      = errors.New("court count is derived from headcount in auto capacity mode")

	// Message errors
	ErrEmptySender = errors.New("sender is required")

	// Storage errors
	ErrHistoryUnavailable = errors.New("message history unavailable")

	// Classifier errors
	ErrNoClassification = errors.New("classifier returned no result")
	ErrMalformedOutput  = errors.New("no JSON object in classifier output")
)
