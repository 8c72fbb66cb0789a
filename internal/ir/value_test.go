package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIRObjectSortedKeys(t *testing.T) {
	obj := IRObject{
		"width":     IRInt(8),
		"variants":  IRArray{},
		"name":      IRString("Payment"),
		"layout_id": IRString("id"),
	}

	assert.Equal(t, []string{"layout_id", "name", "variants", "width"}, obj.SortedKeys())
	assert.Empty(t, IRObject{}.SortedKeys())
}

func TestStrings(t *testing.T) {
	arr := Strings([]string{"IsPaid", "IsAccounted"})
	assert.Equal(t, IRArray{IRString("IsPaid"), IRString("IsAccounted")}, arr)
	assert.Empty(t, Strings(nil))
}
