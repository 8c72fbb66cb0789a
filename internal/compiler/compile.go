// Package compiler turns spec documents into validated models.
//
// Adapters ([CompileYAML], [CompileCUE]) build an [ir.Model] from document
// bytes. [ValidateEnum] and [ValidateModel] check naming and cardinality
// rules, and [SelectWidth] picks the packed integer size for an enum.
package compiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/roach88/bairiak/internal/ir"
)

// Compile dispatches on the extension of filename: .yaml and .yml go to
// CompileYAML, .cue to CompileCUE.
func Compile(data []byte, filename string) (*ir.Model, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return CompileYAML(data, filename)
	case ".cue":
		return CompileCUE(data, filename)
	default:
		return nil, &ParseError{
			File:    filename,
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported spec format %q (want .yaml, .yml or .cue)", filepath.Ext(filename)),
		}
	}
}
