package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	invoiceSpec     = "../../examples/invoice/invoice.yaml"
	permissionsSpec = "../../examples/permissions/permissions.cue"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeSpec writes content to dir/name and returns the path.
func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const paymentYAML = `enums:
  - name: Payment
    variants: [IsPaid, IsRefunded, IsVoid]
`

const brokenYAML = `enums:
  - name: Empty
    variants: []
  - name: Payment
    variants: [is_paid]
`
