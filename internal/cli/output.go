package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/bairiak"
	"github.com/roach88/bairiak/internal/compiler"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Spec failed validation
	ExitCommandError = 2 // Command error (missing file, unreadable spec, bad arguments, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError (2) if the error is not an ExitError, such as a
// usage error reported by cobra.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload, or every error on failure
	Error  *CLIError `json:"error,omitempty"` // first error
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E005", "E203", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with fmt.Fprintln.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Errors outputs several errors at once. JSON output carries the first one
// in "error" and all of them in "data".
func (f *OutputFormatter) Errors(errs []CLIError) error {
	if len(errs) == 0 {
		return nil
	}
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "error", Error: &errs[0], Data: errs})
	}

	fmt.Fprintln(f.Writer, "✗ Validation failed")
	fmt.Fprintln(f.Writer)
	for _, e := range errs {
		fmt.Fprintf(f.Writer, "  %s: %s\n", e.Code, e.Message)
	}
	return nil
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// toCLIErrors flattens err into CLI errors with stable codes and picks the
// exit code: validation failures exit 1, everything else exits 2.
func toCLIErrors(err error) ([]CLIError, int) {
	var verrs compiler.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]CLIError, len(verrs))
		for i, v := range verrs {
			out[i] = CLIError{Code: v.Code, Message: v.Detail(), Details: v}
		}
		return out, ExitFailure
	}

	var (
		loadErr    *LoadError
		parseErr   *compiler.ParseError
		unknownErr *bairiak.UnknownVariantError
		indexErr   *bairiak.IndexError
	)
	switch {
	case errors.As(err, &loadErr):
		return []CLIError{{Code: loadErr.Code, Message: loadErr.Detail()}}, ExitCommandError
	case errors.As(err, &parseErr):
		return []CLIError{{Code: parseErr.Code, Message: parseErr.Position() + ": " + parseErr.Message, Details: parseErr}}, ExitCommandError
	case errors.As(err, &unknownErr):
		return []CLIError{{Code: ErrCodeInvalidRaw, Message: unknownErr.Error()}}, ExitCommandError
	case errors.As(err, &indexErr):
		return []CLIError{{Code: ErrCodeInvalidRaw, Message: indexErr.Error()}}, ExitCommandError
	}
	return []CLIError{{Code: ErrCodeGeneric, Message: err.Error()}}, ExitCommandError
}

// fail reports err through f and returns the matching ExitError.
func fail(f *OutputFormatter, err error) error {
	errs, code := toCLIErrors(err)
	if code == ExitFailure {
		_ = f.Errors(errs)
		return WrapExitError(code, fmt.Sprintf("validation failed with %d error(s)", len(errs)), err)
	}
	_ = f.Error(errs[0].Code, errs[0].Message, errs[0].Details)
	return WrapExitError(code, errs[0].Code, err)
}
