package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/supalite/supalite/postgrest/pgsdk"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Table      string
	Op         string
	Eq         []string
	Neq        []string
	Or         string
	Order      string
	Descending bool
	Limit      int
	Range      string
	Single     bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run one query against the seeded store",
		Long: `Run one select or delete against the seeded store and print the
result envelope as JSON.

Example:
  supalite query --fixtures crm.yaml --table leads --eq status=active --order score --desc --limit 3
  supalite query --fixtures crm.yaml --table leads --or "status.eq.active,status.eq.new"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Table, "table", "", "table to query (required)")
	cmd.Flags().StringVar(&opts.Op, "op", "select", "operation: select or delete")
	cmd.Flags().StringArrayVar(&opts.Eq, "eq", nil, "equality filter, column=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Neq, "neq", nil, "inequality filter, column=value (repeatable)")
	cmd.Flags().StringVar(&opts.Or, "or", "", "or() filter DSL, e.g. status.eq.active,status.eq.new")
	cmd.Flags().StringVar(&opts.Order, "order", "", "ordering column")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "order descending")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "cap the number of rows")
	cmd.Flags().StringVar(&opts.Range, "range", "", "inclusive row range, from:to")
	cmd.Flags().BoolVar(&opts.Single, "single", false, "reduce to the first row")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	client, closeStore, err := openClient(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	b, err := buildQuery(client, opts)
	if err != nil {
		return err
	}

	res := <-b.Go(cmd.Context())
	return printEnvelope(cmd, res)
}

func buildQuery(client *pgsdk.Client, opts *QueryOptions) (*pgsdk.Builder, error) {
	b := client.From(opts.Table)

	switch opts.Op {
	case "select":
		b.Select()
	case "delete":
		b.Delete()
	default:
		return nil, fmt.Errorf("unsupported operation %q: use select or delete", opts.Op)
	}

	for _, f := range opts.Eq {
		column, value, err := splitFilter(f)
		if err != nil {
			return nil, err
		}
		b.Eq(column, value)
	}
	for _, f := range opts.Neq {
		column, value, err := splitFilter(f)
		if err != nil {
			return nil, err
		}
		b.Neq(column, value)
	}
	if opts.Or != "" {
		b.Or(opts.Or)
	}
	if opts.Order != "" {
		b.Order(opts.Order, pgsdk.OrderOpts{Ascending: !opts.Descending})
	}
	if opts.Limit > 0 {
		b.Limit(opts.Limit)
	}
	if opts.Range != "" {
		from, to, err := splitRange(opts.Range)
		if err != nil {
			return nil, err
		}
		b.Range(from, to)
	}
	if opts.Single {
		b.MaybeSingle()
	}
	return b, nil
}

func splitFilter(f string) (string, any, error) {
	column, raw, ok := strings.Cut(f, "=")
	if !ok || column == "" {
		return "", nil, fmt.Errorf("invalid filter %q: want column=value", f)
	}
	return column, parseValue(raw), nil
}

func splitRange(r string) (int, int, error) {
	var from, to int
	if _, err := fmt.Sscanf(r, "%d:%d", &from, &to); err != nil {
		return 0, 0, fmt.Errorf("invalid range %q: want from:to", r)
	}
	return from, to, nil
}

// envelope is the printed form of a result: error as a plain string so the
// JSON stays readable.
type envelope struct {
	Data  any     `json:"data"`
	Count *int    `json:"count,omitempty"`
	Error *string `json:"error"`
}

func printEnvelope(cmd *cobra.Command, res pgsdk.Result) error {
	env := envelope{Data: res.Data, Count: res.Count}
	if res.Data == nil {
		env.Data = []any{}
	}
	if res.Err != nil {
		msg := res.Err.Error()
		env.Error = &msg
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
