// Package jsonfmt pretty-prints and minifies JSON documents without
// reordering keys or rewriting number literals.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultIndent = 2
	MaxIndent     = 10
)

var ErrInvalidJSON = errors.New("invalid JSON")

// Format re-indents input with indent spaces per level.
func Format(input string, indent int) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}
	if indent <= 0 {
		indent = DefaultIndent
	}
	if indent > MaxIndent {
		indent = MaxIndent
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// Minify strips insignificant whitespace.
func Minify(input string) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(input)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

func validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}

	var v interface{}
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}
