package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/bairiak/internal/ir"
)

type yamlDocument struct {
	Enums *[]yamlEnum `yaml:"enums"`
}

type yamlEnum struct {
	Name     *string     `yaml:"name"`
	Variants []yaml.Node `yaml:"variants"`
}

// CompileYAML turns a YAML spec document into a Model.
//
//	enums:
//	  - name: Payment
//	    variants: [IsPaid, IsRefunded]
//
// Decoding is strict: unknown keys, duplicate keys and a missing enums or
// name key are reported as *ParseError. A missing variants key yields an
// enum with no variants, which validation rejects.
func CompileYAML(data []byte, filename string) (*ir.Model, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{File: filename, Code: ErrCodeSchema, Message: "document is empty"}
		}
		return nil, yamlParseError(filename, err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &ParseError{File: filename, Line: extra.Line, Code: ErrCodeSchema, Message: "expected a single YAML document"}
	}

	if doc.Enums == nil {
		return nil, &ParseError{File: filename, Line: 1, Code: ErrCodeSchema, Message: `missing required key "enums"`}
	}

	lines := enumLines(data)
	m := &ir.Model{Source: filename, Enums: make([]ir.EnumSpec, 0, len(*doc.Enums))}
	for i, e := range *doc.Enums {
		line := 0
		if i < len(lines) {
			line = lines[i]
		}
		if e.Name == nil {
			return nil, &ParseError{File: filename, Line: line, Code: ErrCodeSchema, Message: `enum is missing required key "name"`}
		}
		variants, err := yamlVariants(filename, e.Variants)
		if err != nil {
			return nil, err
		}
		m.Enums = append(m.Enums, ir.EnumSpec{
			Name:     norm.NFC.String(*e.Name),
			Variants: normalizeAll(variants),
			Line:     line,
		})
	}
	return m, nil
}

// yamlParseError converts a yaml.v3 error into a ParseError. Type errors
// carry one message per problem; only the first is reported.
func yamlParseError(filename string, err error) *ParseError {
	code := ErrCodeSyntax
	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		code = ErrCodeSchema
		msg = typeErr.Errors[0]
	}
	line, msg := splitYAMLLine(msg)
	return &ParseError{File: filename, Line: line, Code: code, Message: msg, Err: err}
}

// yamlVariants reads every item of a variants sequence. Each item must be a
// non-null scalar: skipping one would move every later variant to a lower
// bit.
func yamlVariants(filename string, items []yaml.Node) ([]string, error) {
	out := make([]string, len(items))
	for i, item := range items {
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, &ParseError{
				File:    filename,
				Line:    item.Line,
				Column:  item.Column,
				Code:    ErrCodeSchema,
				Message: fmt.Sprintf("variant %d must be a name, got %s", i, yamlKind(item)),
			}
		}
		out[i] = item.Value
	}
	return out, nil
}

func yamlKind(n yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	}
	return "null"
}

// enumLines returns the source line of every entry of the top-level enums
// sequence. data has already been decoded once, so errors are ignored.
func enumLines(data []byte) []int {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return nil
	}
	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value != "enums" {
			continue
		}
		seq := top.Content[i+1]
		lines := make([]int, len(seq.Content))
		for j, item := range seq.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func normalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = norm.NFC.String(n)
	}
	return out
}
