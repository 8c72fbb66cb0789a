package codegen

import (
	"fmt"
	"go/token"
	"io"
	"log/slog"
)

// Defaults applied by Options.withDefaults.
const (
	DefaultPackage       = "flags"
	DefaultRuntimeImport = "github.com/roach88/bairiak"
)

// Options configures code generation.
type Options struct {
	// Package is the package clause of the generated file.
	Package string

	// RuntimeImport is the import path of the runtime package. The package
	// it names must be called bairiak.
	RuntimeImport string

	// Source is the spec file name recorded in the generated header.
	// Leave empty to omit it.
	Source string

	// Logger receives one debug record per emitted enum. Nil discards.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = DefaultRuntimeImport
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func (o Options) validate() error {
	if !token.IsIdentifier(o.Package) || o.Package == "_" {
		return fmt.Errorf("codegen: invalid package name %q", o.Package)
	}
	return nil
}
