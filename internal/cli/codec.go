package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bairiak"
	"github.com/roach88/bairiak/internal/ir"
)

// CodecResult is the JSON payload of the encode and decode commands.
// Raw is a decimal string so 128-bit values survive JSON.
type CodecResult struct {
	Enum     string   `json:"enum"`
	Width    int      `json:"width"`
	Raw      string   `json:"raw"`
	Variants []string `json:"variants"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <spec> <enum> [flag...]",
		Short: "Print the raw integer for a set of flags",
		Long: `Print the raw integer that the generated code stores for the given flags
of an enum. Order and repetition of flags do not matter; no flags gives 0.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args[0], args[1], args[2:], cmd)
		},
	}

	return cmd
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <spec> <enum> <raw>",
		Short: "Print the flags set in a raw integer",
		Long: `Print the flags of an enum that are set in a stored raw integer, in bit
order. The raw value may be decimal, or hexadecimal with a 0x prefix. Bits
beyond the declared flags are rejected.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], args[1], args[2], cmd)
		},
	}
	// Raw values such as -1 are arguments, not shorthand flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runEncode(opts *RootOptions, spec, enum string, flags []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	layout, err := loadEnum(opts, spec, enum, cmd)
	if err != nil {
		return fail(formatter, err)
	}

	indices := make([]int, 0, len(flags))
	for _, f := range flags {
		i, ok := layoutIndex(layout, f)
		if !ok {
			return fail(formatter, &LoadError{
				Code:    ErrCodeUnknownVariant,
				Message: fmt.Sprintf("%s has no flag %q", layout.Name, f),
			})
		}
		indices = append(indices, i)
	}

	v, err := bairiak.NewValue(layout.Width, indices...)
	if err != nil {
		return fail(formatter, err)
	}
	return outputCodec(formatter, layout, v)
}

func runDecode(opts *RootOptions, spec, enum, raw string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	layout, err := loadEnum(opts, spec, enum, cmd)
	if err != nil {
		return fail(formatter, err)
	}

	n, err := bairiak.ParseUint128(raw)
	if err != nil {
		return fail(formatter, &LoadError{Code: ErrCodeInvalidRaw, Message: err.Error(), Err: err})
	}
	if err := bairiak.CheckRaw128(layout.Name, n, len(layout.Variants)); err != nil {
		return fail(formatter, err)
	}
	v, err := bairiak.ValueFromRaw(layout.Width, n)
	if err != nil {
		return fail(formatter, err)
	}
	return outputCodec(formatter, layout, v)
}

func loadEnum(opts *RootOptions, spec, enum string, cmd *cobra.Command) (ir.EnumLayout, error) {
	a, err := generateSpec(opts, spec, cmd)
	if err != nil {
		return ir.EnumLayout{}, err
	}
	return findLayout(a, enum)
}

func layoutIndex(l ir.EnumLayout, name string) (int, bool) {
	for _, v := range l.Variants {
		if v.Name == name {
			return v.Bit, true
		}
	}
	return 0, false
}

func outputCodec(formatter *OutputFormatter, l ir.EnumLayout, v bairiak.Value) error {
	result := CodecResult{
		Enum:     l.Name,
		Width:    l.Width.Bits(),
		Raw:      v.String(),
		Variants: []string{},
	}
	for _, i := range v.Indices() {
		result.Variants = append(result.Variants, l.Variants[i].Name)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "%s = %s{%s}\n", result.Raw, result.Enum, strings.Join(result.Variants, "|"))
	return nil
}
