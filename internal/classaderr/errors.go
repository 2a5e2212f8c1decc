// Package classaderr formats structural parse errors with source context,
// line/column information, and a caret pointing at the offending token.
// Only malformed input reaches this package; semantically invalid
// operations are represented inside the value lattice instead.
package classaderr

import (
	"fmt"
	"strings"

	"github.com/classad-go/classad/internal/lexer"
)

// ParseError represents a single parse failure with position and source
// context.
type ParseError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewParseError creates a ParseError at pos.
func NewParseError(pos lexer.Position, message, source, file string) *ParseError {
	return &ParseError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source line and caret. If color is
// true, ANSI escapes highlight the caret and message.
func (e *ParseError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		col := e.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *ParseError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple parse errors, each as its own block,
// separated by a blank line.
func FormatErrors(errors []*ParseError, color bool) string {
	if len(errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errors))
	for _, e := range errors {
		parts = append(parts, e.Format(color))
	}
	return strings.Join(parts, "\n\n")
}
