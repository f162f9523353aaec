// Package server runs the notes HTTP API on a TCP listener.
//
// Run blocks until its context is cancelled and then drains in-flight
// requests within the configured shutdown timeout, closing whatever is
// left after that. Signal handling is the caller's job.
package server
