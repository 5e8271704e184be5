package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestQueryCommand(t *testing.T) {
	t.Run("eq filter", func(t *testing.T) {
		out, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--eq", "status=active",
		)
		require.NoError(t, err)
		newGoldie(t).Assert(t, "query_eq", []byte(out))
	})

	t.Run("or filter with descending order", func(t *testing.T) {
		out, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--or", "status.eq.active,status.eq.new",
			"--order", "score",
			"--desc",
		)
		require.NoError(t, err)
		newGoldie(t).Assert(t, "query_or_ordered", []byte(out))
	})

	t.Run("no matches prints an empty envelope", func(t *testing.T) {
		out, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--eq", "status=ghost",
		)
		require.NoError(t, err)
		newGoldie(t).Assert(t, "query_empty", []byte(out))
	})

	t.Run("numeric flag values coerce", func(t *testing.T) {
		out, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--eq", "score=42",
		)
		require.NoError(t, err)
		assert.Contains(t, out, "lead-1")
	})

	t.Run("range flag", func(t *testing.T) {
		out, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--order", "score",
			"--range", "1:2",
		)
		require.NoError(t, err)
		assert.Contains(t, out, "lead-1") // score 42, sorted position 1
		assert.Contains(t, out, "lead-3") // score 88, sorted position 2
		assert.NotContains(t, out, "lead-2")
	})

	t.Run("invalid filter syntax errors", func(t *testing.T) {
		_, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--eq", "statusactive",
		)
		assert.Error(t, err)
	})

	t.Run("unsupported op errors", func(t *testing.T) {
		_, err := runCLI(t, "query",
			"--fixtures", "testdata/crm.yaml",
			"--table", "leads",
			"--op", "truncate",
		)
		assert.Error(t, err)
	})
}

func TestTablesCommand(t *testing.T) {
	out, err := runCLI(t, "tables", "--fixtures", "testdata/crm.yaml")
	require.NoError(t, err)
	assert.Equal(t, "deals\t1\nleads\t3\n", out)
}

func TestMissingFixturesFile(t *testing.T) {
	_, err := runCLI(t, "query", "--fixtures", "testdata/nope.yaml", "--table", "leads")
	assert.Error(t, err)
}
