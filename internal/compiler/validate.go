package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/bairiak"
	"github.com/roach88/bairiak/internal/ir"
)

// Validation error codes (E200-E299)
const (
	ErrCodeNoEnums          = "E200" // spec declares no enums
	ErrCodeEmptyEnum        = "E201" // enum has no variants
	ErrCodeTooManyVariants  = "E202" // enum has more than 128 variants
	ErrCodeNonCamelCase     = "E203" // enum or variant name is not CamelCase
	ErrCodeDuplicateVariant = "E204" // variant declared twice in one enum
	ErrCodeDuplicateEnum    = "E205" // enum declared twice in one spec
	ErrCodeNameCollision    = "E206" // generated identifiers would collide
)

// Sentinels for errors.Is. Every ValidationError matches the sentinel of
// its code.
var (
	ErrNoEnums          = errors.New("no enums")
	ErrEmptyEnum        = errors.New("empty enum")
	ErrTooManyVariants  = errors.New("too many variants")
	ErrNonCamelCase     = errors.New("non-CamelCase name")
	ErrDuplicateVariant = errors.New("duplicate variant")
	ErrDuplicateEnum    = errors.New("duplicate enum")
	ErrNameCollision    = errors.New("name collision")
)

var sentinels = map[string]error{
	ErrCodeNoEnums:          ErrNoEnums,
	ErrCodeEmptyEnum:        ErrEmptyEnum,
	ErrCodeTooManyVariants:  ErrTooManyVariants,
	ErrCodeNonCamelCase:     ErrNonCamelCase,
	ErrCodeDuplicateVariant: ErrDuplicateVariant,
	ErrCodeDuplicateEnum:    ErrDuplicateEnum,
	ErrCodeNameCollision:    ErrNameCollision,
}

// ValidationError represents a violated naming or cardinality rule.
type ValidationError struct {
	Enum    string `json:"enum,omitempty"`
	Name    string `json:"name,omitempty"` // offending identifier, if any
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return "[" + e.Code + "] " + e.Detail()
}

// Detail is the error text without the code prefix.
func (e ValidationError) Detail() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Enum != "" {
		fmt.Fprintf(&b, "enum %s: ", e.Enum)
	}
	b.WriteString(e.Message)
	if e.Hint != "" {
		fmt.Fprintf(&b, " (did you mean %s?)", e.Hint)
	}
	return b.String()
}

// Is matches the sentinel for e.Code.
func (e ValidationError) Is(target error) bool {
	s, ok := sentinels[e.Code]
	return ok && s == target
}

// ValidationErrors is every enum-level failure found in a model.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap lets errors.Is and errors.As see each ValidationError.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// ValidateEnum checks e and returns the first violation, in this order:
//  1. at least one variant (EmptyEnum)
//  2. at most 128 variants (TooManyVariants)
//  3. the enum name, then each variant, is CamelCase (NonCamelCase)
//  4. no variant is declared twice (DuplicateVariant)
//
// It returns nil when e is valid.
func ValidateEnum(e ir.EnumSpec) *ValidationError {
	fail := func(code, name, msg string) *ValidationError {
		return &ValidationError{Enum: e.Name, Name: name, Message: msg, Code: code, Line: e.Line}
	}

	if len(e.Variants) == 0 {
		return fail(ErrCodeEmptyEnum, "", "at least one variant is required")
	}
	if len(e.Variants) > bairiak.MaxVariants {
		return fail(ErrCodeTooManyVariants, "",
			fmt.Sprintf("%d variants declared, at most %d allowed", len(e.Variants), bairiak.MaxVariants))
	}

	for _, name := range append([]string{e.Name}, e.Variants...) {
		if !IsCamelCase(name) {
			verr := fail(ErrCodeNonCamelCase, name, fmt.Sprintf("%q is not CamelCase", name))
			verr.Hint = camelHint(name)
			return verr
		}
	}

	seen := make(map[string]bool, len(e.Variants))
	for _, v := range e.Variants {
		if seen[v] {
			return fail(ErrCodeDuplicateVariant, v, fmt.Sprintf("variant %q declared more than once", v))
		}
		seen[v] = true
	}
	return nil
}

// ValidateModel validates every enum of m. Each enum reports at most its
// first violation; all failing enums are returned, in declaration order.
// A model with no enums, or with an enum name declared twice, is also
// rejected. Returns nil when m is valid.
func ValidateModel(m *ir.Model) ValidationErrors {
	if len(m.Enums) == 0 {
		return ValidationErrors{{Message: "spec declares no enums", Code: ErrCodeNoEnums}}
	}

	var errs ValidationErrors
	declared := make(map[string]int, len(m.Enums))
	for _, e := range m.Enums {
		if verr := ValidateEnum(e); verr != nil {
			errs = append(errs, *verr)
			continue
		}
		if first, dup := declared[e.Name]; dup {
			msg := "enum declared more than once"
			if first > 0 {
				msg += fmt.Sprintf(" (first at line %d)", first)
			}
			errs = append(errs, ValidationError{
				Enum:    e.Name,
				Name:    e.Name,
				Message: msg,
				Code:    ErrCodeDuplicateEnum,
				Line:    e.Line,
			})
			continue
		}
		declared[e.Name] = e.Line
	}
	return errs
}
