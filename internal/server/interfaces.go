package server

import "context"

// Server is the lifecycle contract of the admin API server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown(ctx context.Context) error
}
