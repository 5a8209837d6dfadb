// Package testutil holds helpers shared by package tests.
package testutil

import (
	"log/slog"
	"time"
)

// FixedTime is a Saturday morning used as the default mock clock time
var FixedTime = time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)

// NopLogger returns a logger that discards all output
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
