package pgsdk

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supalite/supalite/postgrest/record"
)

func TestResultDecoding(t *testing.T) {
	ctx := context.Background()

	type lead struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Score  float64 `json:"score"`
		Status string  `json:"status"`
	}

	t.Run("decode all", func(t *testing.T) {
		client, _ := newTestClient(t)
		seedLeads(t, client,
			record.Record{"id": "a", "name": "Dana", "score": 42, "status": "active"},
			record.Record{"id": "b", "name": "Sam", "score": 7, "status": "new"},
		)

		res := client.From("leads").Select().Order("score", OrderOpts{Ascending: false}).Exec(ctx)
		leads, err := DecodeAll[lead](res)
		require.NoError(t, err)
		require.Len(t, leads, 2)
		assert.Equal(t, lead{ID: "a", Name: "Dana", Score: 42, Status: "active"}, leads[0])
	})

	t.Run("decode first", func(t *testing.T) {
		client, _ := newTestClient(t)
		seedLeads(t, client, record.Record{"id": "a", "name": "Dana"})

		got, ok, err := DecodeFirst[lead](client.From("leads").Select().Single().Exec(ctx))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Dana", got.Name)

		_, ok, err = DecodeFirst[lead](client.From("leads").Select().Eq("id", "ghost").MaybeSingle().Exec(ctx))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAwaitable(t *testing.T) {
	t.Run("receiving settles the query", func(t *testing.T) {
		client, _ := newTestClient(t)

		res := <-client.From("leads").Insert(record.Record{"name": "Dana"}).Go(context.Background())
		require.NoError(t, res.Err)
		assert.Equal(t, 1, tableSize(t, client, "leads"))
	})

	t.Run("channel closes after one result", func(t *testing.T) {
		client, _ := newTestClient(t)

		ch := client.From("leads").Select().Go(context.Background())
		<-ch
		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("each awaited build executes once", func(t *testing.T) {
		// A builder is single-use per build: awaiting a second Go call on
		// the same builder re-runs the mutation.
		client, _ := newTestClient(t)
		b := client.From("leads").Insert(record.Record{"name": "Dana"})

		<-b.Go(context.Background())
		<-b.Go(context.Background())
		assert.Equal(t, 2, tableSize(t, client, "leads"))
	})
}

func TestSimulatedLatency(t *testing.T) {
	t.Run("delays but settles", func(t *testing.T) {
		client, _ := newTestClient(t, WithLatency(20*time.Millisecond))

		start := time.Now()
		res := client.From("leads").Select().Exec(context.Background())
		require.NoError(t, res.Err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancellation settles through the envelope", func(t *testing.T) {
		client, _ := newTestClient(t, WithLatency(time.Minute))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res := client.From("leads").Select().Exec(ctx)
		assert.ErrorIs(t, res.Err, context.Canceled)
	})
}

func TestConcurrentExecutions(t *testing.T) {
	// Each Exec is atomic with respect to every other Exec on the same
	// store: concurrent inserts never lose writes.
	client, _ := newTestClient(t)

	var wg sync.WaitGroup
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := client.From("leads").Insert(record.Record{"id": id}).Exec(context.Background())
			assert.NoError(t, res.Err)
		}()
	}
	wg.Wait()

	assert.Equal(t, len(ids), tableSize(t, client, "leads"))
}

func TestQueryLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	client, _ := newTestClient(t, WithLogger(logger))
	seedLeads(t, client, record.Record{"id": "a", "status": "active"})

	res := client.From("leads").Select().Eq("status", "active").Exec(context.Background())
	require.NoError(t, res.Err)

	out := buf.String()
	assert.Contains(t, out, "table=leads")
	assert.Contains(t, out, "op=select")
	assert.Contains(t, out, "filters=1")
}
