package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List seeded tables and their row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeStore, err := openClient(rootOpts)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, table := range client.Store().Tables() {
				res := client.From(table).Select().Exec(cmd.Context())
				if res.Err != nil {
					return res.Err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", table, len(res.Data))
			}
			return nil
		},
	}
}
