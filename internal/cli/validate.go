package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bairiak/internal/codegen"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool       `json:"valid"`
	Specs  int        `json:"specs"`
	Enums  int        `json:"enums"`
	Errors []CLIError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <spec>...",
		Short: "Validate specs without writing code",
		Long: `Validate YAML or CUE specs without writing any file.

Runs the same checks as generate: document shape, CamelCase names, 1 to 128
distinct flags per enum, unique enum names and non-colliding generated
identifiers. Every spec is checked and every failing enum is reported.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, specs []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)
	logger := opts.newLogger(cmd.ErrOrStderr())

	models, loadErrors := LoadSpecs(specs)

	result := ValidationResult{Specs: len(specs)}
	exitCode := ExitSuccess
	for _, err := range loadErrors {
		errs, _ := toCLIErrors(err)
		result.Errors = append(result.Errors, errs...)
		exitCode = ExitCommandError
	}

	for i, m := range models {
		if m == nil {
			continue
		}
		formatter.VerboseLog("Validating %s: %d enum(s)", specs[i], len(m.Enums))
		result.Enums += len(m.Enums)

		_, err := codegen.Generate(m, codegen.Options{Logger: logger})
		if err == nil {
			continue
		}
		errs, code := toCLIErrors(err)
		for j := range errs {
			errs[j].Message = specs[i] + ": " + errs[j].Message
		}
		result.Errors = append(result.Errors, errs...)
		exitCode = max(exitCode, code)
	}

	if len(result.Errors) > 0 {
		return outputValidationErrors(formatter, result, exitCode)
	}

	result.Valid = true
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ All specs valid (%d spec(s), %d enum(s))\n", result.Specs, result.Enums)
	return nil
}

// outputValidationErrors outputs every validation error.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult, exitCode int) error {
	if formatter.Format == "json" {
		if err := formatter.encode(CLIResponse{
			Status: "error",
			Data:   result,
			Error:  &result.Errors[0],
		}); err != nil {
			return err
		}
	} else {
		_ = formatter.Errors(result.Errors)
	}
	return NewExitError(exitCode, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
}
