package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roach88/bairiak/internal/compiler"
	"github.com/roach88/bairiak/internal/ir"
)

// Error code constants - unified across all CLI commands.
// Parse (E1xx) and validation (E2xx) codes come from the compiler package.
const (
	ErrCodeGeneric        = "E001" // Generic/unknown error
	ErrCodeNotFound       = "E005" // Path not found
	ErrCodeWriteFailed    = "E007" // File write error
	ErrCodeReadFailed     = "E008" // File read error
	ErrCodeInvalidArgs    = "E009" // Invalid combination of arguments
	ErrCodeUnknownEnum    = "E010" // Enum not declared in the spec
	ErrCodeUnknownVariant = "E011" // Variant not declared for the enum
	ErrCodeInvalidRaw     = "E012" // Raw value does not fit the enum
)

// LoadError represents an error that occurred while reading a spec file.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Detail())
}

// Detail is the error text without the code prefix.
func (e *LoadError) Detail() string {
	if e.Path != "" {
		return e.Path + ": " + e.Message
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadSpec reads and compiles the spec at path. The format is picked from
// the file extension. Read failures are *LoadError; malformed documents are
// *compiler.ParseError.
func LoadSpec(path string) (*ir.Model, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "spec file not found", Err: err}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Path: path, Message: "reading spec file", Err: err}
	}
	return compiler.Compile(data, path)
}

// LoadSpecs loads every path in order and keeps going past failures.
// models[i] is nil for every path that failed.
func LoadSpecs(paths []string) ([]*ir.Model, []error) {
	models := make([]*ir.Model, len(paths))
	var errs []error
	for i, path := range paths {
		m, err := LoadSpec(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		models[i] = m
	}
	return models, errs
}
