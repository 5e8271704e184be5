// Package cli implements the supalite command line, a thin consumer of the
// mock data layer's public surface: it seeds a volatile store from YAML
// fixtures, runs one query through the builder, and prints the envelope.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Fixtures string
	Verbose  bool
}

// NewRootCommand creates the root command for the supalite CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "supalite",
		Short: "In-memory mock of a PostgREST-style backend",
		Long: `supalite seeds an in-memory mock backend from YAML fixtures and runs
queries against it through the same builder surface application code uses.

The store is volatile: every invocation starts from the fixtures file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Fixtures, "fixtures", "", "YAML fixtures file to seed the store from")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log one line per executed query")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewTablesCommand(opts))

	return cmd
}
