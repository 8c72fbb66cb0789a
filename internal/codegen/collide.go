package codegen

import (
	"fmt"

	"github.com/roach88/bairiak/internal/compiler"
	"github.com/roach88/bairiak/internal/ir"
)

// identifiers lists every package-level identifier emitted for e.
func identifiers(e ir.EnumSpec) []string {
	n := e.Name
	ids := []string{
		n,
		n + "Count",
		n + "LayoutID",
		"_" + n + "_names",
		n + "Variants",
		n + "Bairiak",
		"New" + n + "Bairiak",
		"MustNew" + n + "Bairiak",
		n + "BairiakFromSet",
		n + "BairiakFromRaw",
	}
	for _, v := range e.Variants {
		ids = append(ids, n+v)
	}
	return ids
}

// checkCollisions rejects models whose generated identifiers clash: flag
// Count of enum Payment against PaymentCount, or enum PaymentIsPaid next to
// flag IsPaid of enum Payment. Enums must already be valid.
func checkCollisions(enums []ir.EnumSpec) compiler.ValidationErrors {
	owner := make(map[string]string)
	var errs compiler.ValidationErrors
	for _, e := range enums {
		for _, id := range identifiers(e) {
			prev, taken := owner[id]
			if !taken {
				owner[id] = e.Name
				continue
			}
			msg := fmt.Sprintf("generated identifier %s is declared twice", id)
			if prev != e.Name {
				msg = fmt.Sprintf("generated identifier %s is also declared for enum %s", id, prev)
			}
			errs = append(errs, compiler.ValidationError{
				Enum:    e.Name,
				Name:    id,
				Message: msg,
				Code:    compiler.ErrCodeNameCollision,
				Line:    e.Line,
			})
			break
		}
	}
	return errs
}
