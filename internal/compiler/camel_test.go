package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCamelCase(t *testing.T) {
	valid := []string{"IsPaid", "A", "Http2Enabled", "ÉtéActive", "IsReceiverVerified", "ABC"}
	for _, s := range valid {
		assert.True(t, IsCamelCase(s), "%q should be CamelCase", s)
	}

	invalid := []string{"", "is_paid", "isPaid", "Is_Paid", "Is-Paid", "Is Paid", "2Fa", "_Private", "IsPaid!"}
	for _, s := range invalid {
		assert.False(t, IsCamelCase(s), "%q should not be CamelCase", s)
	}
}

func TestCamelHint(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"is_paid", "IsPaid"},
		{"is-already-paid", "IsAlreadyPaid"},
		{"isPaid", "IsPaid"},
		{"is paid", "IsPaid"},
		{"IsPaid", ""}, // already CamelCase
		{"___", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, camelHint(tt.in), "camelHint(%q)", tt.in)
	}
}
