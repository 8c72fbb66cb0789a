package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bairiak"
)

func TestInspectText(t *testing.T) {
	stdout, _, err := execute(t, "inspect", invoiceSpec)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Invoice (16-bit, 16 flag(s), layout ")
	assert.Contains(t, stdout, "    0  IsReceiverVerified\n")
	assert.Contains(t, stdout, "    5  IsAlreadyPaid\n")
	assert.Contains(t, stdout, "   15  IsExported\n")
}

func TestInspectJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "inspect", permissionsSpec)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   InspectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Data.Fingerprint, 64)
	require.Len(t, resp.Data.Enums, 1)

	perm := resp.Data.Enums[0]
	assert.Equal(t, "Permission", perm.Name)
	assert.Equal(t, bairiak.Width128, perm.Width)
	require.Len(t, perm.Variants, 66)
	assert.Equal(t, "CanReadOrders", perm.Variants[0].Name)
	assert.Equal(t, "CanApproveSuppliers", perm.Variants[65].Name)
	assert.NotEmpty(t, perm.LayoutID)
}

func TestInspectInvalidSpec(t *testing.T) {
	spec := writeSpec(t, t.TempDir(), "broken.yaml", brokenYAML)

	_, _, err := execute(t, "inspect", spec)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
