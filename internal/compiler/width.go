package compiler

import (
	"fmt"

	"github.com/roach88/bairiak"
)

// SelectWidth returns the narrowest width that holds n flags.
//
//	1-8 -> 8, 9-16 -> 16, 17-32 -> 32, 33-64 -> 64, 65-128 -> 128
//
// n must be in [1, 128]; validation guarantees this, so any other value
// panics.
func SelectWidth(n int) bairiak.Width {
	if n < 1 || n > bairiak.MaxVariants {
		panic(fmt.Sprintf("compiler: SelectWidth(%d) outside [1, %d]", n, bairiak.MaxVariants))
	}
	for _, w := range bairiak.Widths {
		if n <= w.Bits() {
			return w
		}
	}
	return bairiak.Width128
}
