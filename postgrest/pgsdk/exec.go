package pgsdk

import (
	"context"
	"fmt"
	"time"
)

// Exec runs the accumulated operation against the store and settles into a
// Result. Execution is atomic with respect to every other Exec on the same
// client: a single run goes filter -> mutate/read -> return without another
// operation interleaving.
func (b *Builder) Exec(ctx context.Context) Result {
	start := time.Now()

	if err := b.simulateLatency(ctx); err != nil {
		return Result{Err: err}
	}

	b.client.execMu.Lock()
	defer b.client.execMu.Unlock()

	var res Result
	switch b.op {
	case opSelect:
		res = b.execSelect()
	case opInsert:
		res = b.execInsert()
	case opUpdate:
		res = b.execUpdate()
	case opDelete:
		res = b.execDelete()
	case opUpsert:
		res = b.execUpsert()
	default:
		res = Result{Err: fmt.Errorf("unknown operation %q", b.op)}
	}

	b.client.opts.logger.Info("query executed",
		"table", b.table,
		"op", string(b.op),
		"filters", len(b.preds),
		"rows", len(res.Data),
		"duration", time.Since(start),
	)
	return res
}

// simulateLatency sleeps for the configured artificial delay. The context
// is honored so a canceled caller still settles promptly, with the
// cancellation surfaced through the envelope.
func (b *Builder) simulateLatency(ctx context.Context) error {
	d := b.client.opts.latency
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
