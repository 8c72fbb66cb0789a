package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bairiak/internal/codegen"
	"github.com/roach88/bairiak/internal/ir"
)

// InspectResult is the JSON payload of the inspect command.
type InspectResult struct {
	Spec        string          `json:"spec"`
	Fingerprint string          `json:"fingerprint"`
	Enums       []ir.EnumLayout `json:"enums"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <spec>",
		Short: "Show the bit layout of every enum in a spec",
		Long: `Show the width, the bit index of every flag and the layout ID of every
enum in a spec. The layout ID changes whenever a flag is renamed or moved, so
it can be stored next to raw values to detect incompatible spec edits.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, spec string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	a, err := generateSpec(opts, spec, cmd)
	if err != nil {
		return fail(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(InspectResult{Spec: spec, Fingerprint: a.Fingerprint, Enums: a.Enums})
	}

	for i, e := range a.Enums {
		if i > 0 {
			fmt.Fprintln(formatter.Writer)
		}
		fmt.Fprintf(formatter.Writer, "%s (%s, %d flag(s), layout %s)\n", e.Name, e.Width, len(e.Variants), e.LayoutID)
		for _, v := range e.Variants {
			fmt.Fprintf(formatter.Writer, "  %3d  %s\n", v.Bit, v.Name)
		}
	}
	return nil
}

// generateSpec loads and generates spec in memory.
func generateSpec(opts *RootOptions, spec string, cmd *cobra.Command) (*codegen.Artifact, error) {
	m, err := LoadSpec(spec)
	if err != nil {
		return nil, err
	}
	return codegen.Generate(m, codegen.Options{Logger: opts.newLogger(cmd.ErrOrStderr())})
}

// findLayout returns the layout of the named enum.
func findLayout(a *codegen.Artifact, enum string) (ir.EnumLayout, error) {
	for _, l := range a.Enums {
		if l.Name == enum {
			return l, nil
		}
	}
	names := make([]string, len(a.Enums))
	for i, l := range a.Enums {
		names[i] = l.Name
	}
	return ir.EnumLayout{}, &LoadError{
		Code:    ErrCodeUnknownEnum,
		Message: fmt.Sprintf("enum %q is not declared (have %v)", enum, names),
	}
}
