//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext returns a context canceled on interrupt.
// Windows delivers no SIGTERM to console processes.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
