package pgsdk

import "context"

// Go makes a fully-built query awaitable without a separate terminal call:
// receive from the returned channel to settle it. Execution is triggered
// exactly once per Go call and the channel is buffered, so the result is
// never lost if the caller is slow to receive.
//
// Like Exec, this does not make the builder reusable: calling Go (or Exec)
// twice on the same builder re-runs the operation, mutations included.
func (b *Builder) Go(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- b.Exec(ctx)
	}()
	return ch
}
