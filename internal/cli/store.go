package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/supalite/supalite/postgrest/pgsdk"
	"github.com/supalite/supalite/postgrest/pgstore"
)

// openClient builds a seeded client for one invocation.
func openClient(opts *RootOptions) (*pgsdk.Client, func(), error) {
	store, err := pgstore.New(pgstore.StoreOptions{})
	if err != nil {
		return nil, nil, err
	}
	closer := func() { _ = store.Close() }

	if opts.Fixtures != "" {
		fixtures, err := pgstore.LoadFixtures(opts.Fixtures)
		if err != nil {
			closer()
			return nil, nil, err
		}
		if err := store.Seed(fixtures, nil); err != nil {
			closer()
			return nil, nil, fmt.Errorf("seed store: %w", err)
		}
	}

	var clientOpts []pgsdk.Option
	if opts.Verbose {
		clientOpts = append(clientOpts, pgsdk.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}
	return pgsdk.New(store, clientOpts...), closer, nil
}

// parseValue types a flag value the way the or() DSL types its literals:
// null, booleans and numbers become their Go counterparts, everything else
// stays a string.
func parseValue(tok string) any {
	switch tok {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}
