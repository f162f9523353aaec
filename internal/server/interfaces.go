package server

import "context"

// Server owns the listening sockets of the notes API.
type Server interface {
	// Run serves until ctx is cancelled, then drains in-flight requests.
	// A nil error means a clean stop.
	Run(ctx context.Context) error

	// Shutdown drains and stops the server. It may be called while Run
	// is still blocked.
	Shutdown()
}
