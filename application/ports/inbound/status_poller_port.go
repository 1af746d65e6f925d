package inbound

import "context"

// StatusPollerPort drives periodic reconciliation of non-terminal records.
// Start is non-blocking; Stop waits for no in-flight tick but never
// interrupts one.
type StatusPollerPort interface {
	Start(ctx context.Context) error
	Stop()
	// RunOnce performs a single reconciliation pass over every active project.
	RunOnce(ctx context.Context)
}
