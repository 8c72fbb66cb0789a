package compiler

import (
	_ "embed"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/bairiak/internal/ir"
)

//go:embed schema.cue
var schemaSource string

type cueDocument struct {
	Enums []cueEnum `json:"enums"`
}

type cueEnum struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

// CompileCUE turns a CUE spec document into a Model. The document is
// unified with the embedded #Spec schema, so unknown fields, missing
// required fields and non-concrete values are reported as *ParseError with
// the CUE source position.
func CompileCUE(data []byte, filename string) (*ir.Model, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema is embedded; failing to compile it is a build defect.
		panic("compiler: invalid embedded schema: " + err.Error())
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueParseError(filename, ErrCodeSyntax, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Spec")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueParseError(filename, ErrCodeSchema, err)
	}

	var doc cueDocument
	if err := unified.Decode(&doc); err != nil {
		return nil, cueParseError(filename, ErrCodeSchema, err)
	}

	lines := cueEnumLines(v)
	m := &ir.Model{Source: filename, Enums: make([]ir.EnumSpec, 0, len(doc.Enums))}
	for i, e := range doc.Enums {
		line := 0
		if i < len(lines) {
			line = lines[i]
		}
		m.Enums = append(m.Enums, ir.EnumSpec{
			Name:     norm.NFC.String(e.Name),
			Variants: normalizeAll(e.Variants),
			Line:     line,
		})
	}
	return m, nil
}

// cueEnumLines returns the declaration line of every element of enums.
func cueEnumLines(v cue.Value) []int {
	iter, err := v.LookupPath(cue.ParsePath("enums")).List()
	if err != nil {
		return nil
	}
	var lines []int
	for iter.Next() {
		lines = append(lines, iter.Value().Pos().Line())
	}
	return lines
}

// cueParseError extracts position info from CUE errors.
// CUE errors may contain multiple errors; the first one is reported.
func cueParseError(filename, code string, err error) *ParseError {
	perr := &ParseError{File: filename, Code: code, Message: err.Error(), Err: err}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return perr
	}
	first := errs[0]
	perr.Message = first.Error()
	positions := cueerrors.Positions(first)
	if len(positions) == 0 {
		return perr
	}
	// Prefer a position in the document over one in the schema.
	pos := positions[0]
	for _, p := range positions {
		if p.Filename() == filename {
			pos = p
			break
		}
	}
	perr.Line = pos.Line()
	perr.Column = pos.Column()
	return perr
}
