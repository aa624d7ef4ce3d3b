// Package server runs the admin API.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
