package system

import "context"

// Runs an operation with context awareness. The operation receives a context
// derived from ctx and is expected to stop early once it is cancelled.
//
// Returns:
//   - ctx.Err() without running the operation if ctx is already done.
//   - the operation's own error, which preserves the original error chain.
//   - ctx.Err() if ctx was cancelled while an operation that ignored it succeeded.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so the goroutine can always exit.
	done := make(chan error, 1)
	go func() {
		done <- operation(opCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		// Wait so the operation never outlives its resources.
		if err := <-done; err != nil {
			return err
		}
		return ctx.Err()
	}
}
