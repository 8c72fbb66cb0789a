package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInvoice(t *testing.T) {
	stdout, _, err := execute(t, "encode", invoiceSpec, "Invoice",
		"IsReceiverVerified", "IsSupplierVerified", "IsAlreadyPaid")
	require.NoError(t, err)
	assert.Equal(t, "35 = Invoice{IsReceiverVerified|IsSupplierVerified|IsAlreadyPaid}\n", stdout)
}

func TestEncodeOrderAndRepetitionIrrelevant(t *testing.T) {
	stdout, _, err := execute(t, "encode", invoiceSpec, "Invoice",
		"IsAlreadyPaid", "IsReceiverVerified", "IsAlreadyPaid", "IsSupplierVerified")
	require.NoError(t, err)
	assert.Contains(t, stdout, "35 = ")
}

func TestEncodeNoFlags(t *testing.T) {
	stdout, _, err := execute(t, "encode", invoiceSpec, "Invoice")
	require.NoError(t, err)
	assert.Equal(t, "0 = Invoice{}\n", stdout)
}

func TestEncodeWide(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "encode", permissionsSpec, "Permission",
		"CanReadOrders", "CanApproveSuppliers")
	require.NoError(t, err)

	var resp struct {
		Data CodecResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 128, resp.Data.Width)
	assert.Equal(t, "36893488147419103233", resp.Data.Raw) // 1<<65 | 1
	assert.Equal(t, []string{"CanReadOrders", "CanApproveSuppliers"}, resp.Data.Variants)
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"unknown enum", []string{"encode", invoiceSpec, "Bill", "IsPaid"}, ErrCodeUnknownEnum},
		{"unknown flag", []string{"encode", invoiceSpec, "Invoice", "IsLost"}, ErrCodeUnknownVariant},
		{"missing spec", []string{"encode", "nope.yaml", "Invoice"}, ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.wantCode+"]")
		})
	}
}

func TestDecodeInvoice(t *testing.T) {
	for _, raw := range []string{"35", "0x23"} {
		t.Run(raw, func(t *testing.T) {
			stdout, _, err := execute(t, "decode", invoiceSpec, "Invoice", raw)
			require.NoError(t, err)
			assert.Equal(t, "35 = Invoice{IsReceiverVerified|IsSupplierVerified|IsAlreadyPaid}\n", stdout)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "decode", invoiceSpec, "Invoice", "0")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CodecResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "0", resp.Data.Raw)
	assert.Equal(t, 16, resp.Data.Width)
	assert.Empty(t, resp.Data.Variants)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"undeclared bit", "65536"}, // bit 16 of a 16-flag enum
		{"beyond width", "0x100000000"},
		{"not a number", "lots"},
		{"negative", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "decode", invoiceSpec, "Invoice", tt.raw)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+ErrCodeInvalidRaw+"]")
		})
	}
}

func TestDecodeRoundTripsEncode(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "encode", permissionsSpec, "Permission",
		"CanExportUsers", "CanDeleteRefunds", "CanApproveSuppliers")
	require.NoError(t, err)

	var enc struct {
		Data CodecResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &enc))

	stdout, _, err = execute(t, "--format", "json", "decode", permissionsSpec, "Permission", enc.Data.Raw)
	require.NoError(t, err)

	var dec struct {
		Data CodecResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &dec))
	assert.Equal(t, enc.Data, dec.Data)
}

func TestDecodeUsageErrorIsCommandError(t *testing.T) {
	_, _, err := execute(t, "decode", invoiceSpec, "Invoice")
	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "argument count errors come from cobra")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
