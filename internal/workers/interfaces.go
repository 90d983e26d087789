// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way, plus the media janitor that
// retries destruction of orphaned profile images.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines and keep
// working until ctx is cancelled or Stop is called. Stop blocks until the
// worker's goroutines have exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go w.loop(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
