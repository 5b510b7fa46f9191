// Package parser provides the native front-end for the funding DSL:
// a hand-written lexer, a recursive descent parser, and a model
// builder.
//
// # Usage
//
//	cfg, err := parser.Parse(text)
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for the funding
// configuration language:
//
//	config      → "funding" STRING "{" config_body "}"
//	config_body → (description | currency | min_amount | max_amount
//	              | beneficiaries_block | sources_block
//	              | tiers_block | goals_block)*
//
// Fields inside a block may appear in any order; duplicating a
// single-valued field is a parse error. See each parse function for
// the grammar rule it implements.
package parser

import (
	"fmt"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/fundinglabs/fundingdsl/pkg/token"
)

// Parser parses funding DSL text into an AST.
type Parser struct {
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
}

// NewParser creates a new parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a funding document and builds the configuration. It
// fails with the first lexical, syntactic, or model-building error and
// never returns a partially populated configuration.
func Parse(text string) (*core.Configuration, error) {
	decl, err := ParseDocument(text)
	if err != nil {
		return nil, err
	}
	return Build(decl)
}

// ParseDocument parses a funding document into its AST without
// building the semantic model.
func ParseDocument(text string) (*FundingDecl, error) {
	p := NewParser(text)
	decl := p.parseFunding()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return decl, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token. Illegal tokens from the lexer
// are reported once, as they are loaded.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
	if p.peek.Type == token.ILLEGAL {
		p.addLexError(p.peek)
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an
// error.
func (p *Parser) expect(t token.Type) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, t))
	return false
}

// failed returns true once any error has been recorded. The parser
// fails fast: block loops stop at the first error.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// addError adds a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// addLexError converts an illegal token into a lex error.
func (p *Parser) addLexError(tok token.Token) {
	msg := tok.Literal
	if len(msg) == 1 {
		msg = fmt.Sprintf("unrecognized character %q", msg)
	}
	p.errors = append(p.errors, &LexError{
		Pos:     tok.Pos,
		Message: msg,
	})
}

// ---------- Value Helpers ----------

// parseStringValue consumes the current keyword token and the string
// literal that must follow it.
func (p *Parser) parseStringValue() (StringField, bool) {
	p.nextToken() // consume keyword
	if !p.check(token.STRING) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.STRING))
		return StringField{}, false
	}
	f := StringField{Value: p.token.Literal, Pos: p.token.Pos}
	p.nextToken()
	return f, true
}

// parseIdentValue consumes the current keyword token and the bare
// identifier that must follow it (currency code, funding type).
func (p *Parser) parseIdentValue() (IdentField, bool) {
	p.nextToken() // consume keyword
	if !p.check(token.IDENT) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.IDENT))
		return IdentField{}, false
	}
	f := IdentField{Value: p.token.Literal, Pos: p.token.Pos}
	p.nextToken()
	return f, true
}

// parseBoolValue consumes the current keyword token and the boolean
// literal that must follow it.
func (p *Parser) parseBoolValue() (BoolField, bool) {
	p.nextToken() // consume keyword
	switch p.token.Type {
	case token.TRUE:
		f := BoolField{Value: true, Pos: p.token.Pos}
		p.nextToken()
		return f, true
	case token.FALSE:
		f := BoolField{Value: false, Pos: p.token.Pos}
		p.nextToken()
		return f, true
	default:
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.TRUE))
		return BoolField{}, false
	}
}

// parseNumberValue consumes the current keyword token and the numeric
// literal that must follow it.
func (p *Parser) parseNumberValue() (NumberField, bool) {
	p.nextToken() // consume keyword
	if !p.check(token.NUMBER) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.NUMBER))
		return NumberField{}, false
	}
	f := NumberField{Literal: p.token.Literal, Pos: p.token.Pos}
	p.nextToken()
	return f, true
}

// parseAmountValue consumes the current keyword token and the amount
// that must follow it: a numeric literal with an optional trailing
// currency code, e.g. `5.0 EUR`. Without the code the configuration's
// preferred currency applies.
func (p *Parser) parseAmountValue() (AmountField, bool) {
	p.nextToken() // consume keyword
	if !p.check(token.NUMBER) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.NUMBER))
		return AmountField{}, false
	}
	f := AmountField{Literal: p.token.Literal, Pos: p.token.Pos}
	p.nextToken()
	if p.check(token.IDENT) {
		f.Currency = &IdentField{Value: p.token.Literal, Pos: p.token.Pos}
		p.nextToken()
	}
	return f, true
}
