package compiler

import (
	"fmt"
	"regexp"
	"strconv"
)

// Parse error codes (E101-E199)
const (
	ErrCodeSyntax      = "E101" // document is not well-formed YAML or CUE
	ErrCodeSchema      = "E102" // document does not have the enums/name/variants shape
	ErrCodeUnsupported = "E103" // file extension has no adapter
)

// ParseError reports a spec document that could not be turned into a model.
type ParseError struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: [%s] %s", e.Position(), e.Code, e.Message)
}

// Position renders the file, line and column the error points at.
func (e *ParseError) Position() string {
	loc := e.File
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
		if e.Column > 0 {
			loc = fmt.Sprintf("%s:%d", loc, e.Column)
		}
	}
	return loc
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// yamlLinePattern matches the "line N: msg" fragments in yaml.v3 errors.
var yamlLinePattern = regexp.MustCompile(`line (\d+): (.*)$`)

// splitYAMLLine extracts the line number from a yaml.v3 error message.
// It returns 0 and the message unchanged when there is none.
func splitYAMLLine(msg string) (int, string) {
	m := yamlLinePattern.FindStringSubmatch(msg)
	if m == nil {
		return 0, msg
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, msg
	}
	return line, m[2]
}
