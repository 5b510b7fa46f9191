package parser

import (
	"fmt"

	"github.com/fundinglabs/fundingdsl/pkg/token"
)

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// BuildError represents a model-building error: a literal that could
// not be coerced or a required field that is missing. Entity names the
// containing declaration, e.g. `goal "Infrastructure Costs"`.
type BuildError struct {
	Entity  string
	Field   string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("cannot build %s: %s: %s", e.Entity, e.Field, e.Message)
}

// Common error messages.
const (
	errUnterminatedString = "unterminated string literal"
	errUnexpectedToken    = "unexpected token %s, expected %s"
	errDuplicateField     = "duplicate %s field"
	errUnknownKey         = "unknown key %q in %s block"
	errUnknownPlatform    = "unknown platform %q"
	errDuplicateConfigKey = "duplicate config key %q"
)
