package pgsdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supalite/supalite/postgrest/pgstore"
	"github.com/supalite/supalite/postgrest/record"
)

// testClock is an advanceable time source so refreshed timestamps are
// observable.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *testClock) {
	t.Helper()
	store, err := pgstore.New(pgstore.StoreOptions{})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	clock := newTestClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return New(store, opts...), clock
}

// seedLeads inserts a small fixed CRM table through the store layer.
func seedLeads(t *testing.T, c *Client, recs ...record.Record) {
	t.Helper()
	for _, rec := range recs {
		require.NoError(t, c.Store().Insert("leads", record.Normalize(rec, c.opts.clock)))
	}
}
