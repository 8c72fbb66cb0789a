package codegen

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/roach88/bairiak"
	"github.com/roach88/bairiak/internal/compiler"
	"github.com/roach88/bairiak/internal/ir"
)

//go:embed enum.go.tmpl
var enumTemplateSource string

var enumTemplate = template.Must(template.New("enum").Parse(enumTemplateSource))

// Artifact is the output of one generation run.
type Artifact struct {
	Code        []byte          // gofmt-formatted Go source
	Enums       []ir.EnumLayout // one layout per enum, in declaration order
	Fingerprint string          // domain-separated SHA-256 of Code
	Source      string          // Options.Source
}

// Generate validates every enum of m and emits them into a single Go file.
// It is all-or-nothing: if any enum fails validation no code is produced and
// the returned error is a compiler.ValidationErrors listing every failing
// enum. Identical models and options always produce identical bytes.
func Generate(m *ir.Model, opts Options) (*Artifact, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if errs := compiler.ValidateModel(m); len(errs) > 0 {
		return nil, errs
	}

	layouts := make([]ir.EnumLayout, 0, len(m.Enums))
	for _, e := range m.Enums {
		layout, err := ir.NewEnumLayout(e, compiler.SelectWidth(len(e.Variants)))
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, layout)
	}
	if errs := checkCollisions(m.Enums); len(errs) > 0 {
		return nil, errs
	}

	code, err := render(layouts, opts)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Code:        code,
		Enums:       layouts,
		Fingerprint: ir.Fingerprint(code),
		Source:      opts.Source,
	}, nil
}

// Emit generates a file holding a single enum packed into width w. e must
// already be valid and w must hold every variant; Generate is the checked
// entry point.
func Emit(e ir.EnumSpec, w bairiak.Width, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	layout, err := ir.NewEnumLayout(e, w)
	if err != nil {
		return nil, err
	}
	return render([]ir.EnumLayout{layout}, opts)
}

type enumData struct {
	ir.EnumLayout
	Count  int
	Bits   int
	GoType string
	Wide   bool
	Consts []constData
}

type constData struct {
	Ident   string // Go identifier of the constant
	Variant string
	Bit     int
}

func newEnumData(l ir.EnumLayout) enumData {
	d := enumData{
		EnumLayout: l,
		Count:      len(l.Variants),
		Bits:       l.Width.Bits(),
		GoType:     l.Width.GoType(),
		Wide:       l.Width == bairiak.Width128,
		Consts:     make([]constData, len(l.Variants)),
	}
	for i, v := range l.Variants {
		d.Consts[i] = constData{Ident: l.Name + v.Name, Variant: v.Name, Bit: v.Bit}
	}
	return d
}

func render(layouts []ir.EnumLayout, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if opts.Source != "" {
		fmt.Fprintf(&buf, "// Code generated by bairiak from %s. DO NOT EDIT.\n\n", opts.Source)
	} else {
		buf.WriteString("// Code generated by bairiak. DO NOT EDIT.\n\n")
	}
	fmt.Fprintf(&buf, "package %s\n\nimport %q\n", opts.Package, opts.RuntimeImport)

	for _, l := range layouts {
		opts.Logger.Debug("emitting enum",
			"enum", l.Name,
			"variants", len(l.Variants),
			"width", l.Width.Bits(),
			"layout_id", l.LayoutID,
		)
		buf.WriteByte('\n')
		if err := enumTemplate.Execute(&buf, newEnumData(l)); err != nil {
			return nil, fmt.Errorf("codegen: render %s: %w", l.Name, err)
		}
	}

	code, err := imports.Process(opts.Source, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("codegen: format generated code: %w", err)
	}
	return code, nil
}
