// supalite runs queries against an in-memory mock of a PostgREST-style
// backend, seeded from YAML fixtures.
//
//	supalite query --fixtures crm.yaml --table leads --eq status=active
//	supalite tables --fixtures crm.yaml
package main

import (
	"fmt"
	"os"

	"github.com/supalite/supalite/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
