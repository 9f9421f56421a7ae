// Package monitor implements dead man's switches for the service.
package monitor

import (
	"context"

	"github.com/bufrsh/cronchirp/internal/pp"
)

//go:generate mockgen -typed -destination=../mocks/mock_monitor.go -package=mocks . Monitor

// Monitor is an abstract dead man's switch.
type Monitor interface {
	// Describe a monitor in a human-readable format by calling callback with service names and params.
	Describe(callback func(service, params string))

	// Start pings the monitor with the start signal.
	Start(ctx context.Context, ppfmt pp.PP, message string) bool

	// Success pings the monitor with the success signal.
	Success(ctx context.Context, ppfmt pp.PP, message string) bool

	// Failure pings the monitor with the failure signal.
	Failure(ctx context.Context, ppfmt pp.PP, message string) bool

	// ExitStatus reports the exit status (as an integer in 0-255).
	ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool
}
