// Package token defines the lexical tokens of the funding DSL.
//
// Keywords are the lowercase block and field names of the language
// (funding, beneficiary, tier, ...). Platform names, funding types, and
// currency codes are deliberately NOT keywords: they lex as IDENT and
// are interpreted by the parser and model builder, which keeps the
// token set closed while the enumerations evolve in pkg/core.
package token

// Type represents the type of a lexical token.
type Type int

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Literals
	IDENT  // bare identifier: EUR, both, github_sponsors
	STRING // "double quoted"
	NUMBER // 5, 25.0

	// Delimiters
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,

	// Keywords
	FUNDING
	DESCRIPTION
	CURRENCY
	MIN_AMOUNT
	MAX_AMOUNT
	BENEFICIARIES
	BENEFICIARY
	EMAIL
	GITHUB
	WEBSITE
	SOURCES
	TYPE
	ACTIVE
	URL
	CONFIG
	TIERS
	TIER
	AMOUNT
	MAX_SPONSORS
	BENEFITS
	GOALS
	GOAL
	TARGET
	CURRENT
	DEADLINE
	TRUE
	FALSE
)

// tokenNames maps token types to their string representations.
var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	STRING: "STRING",
	NUMBER: "NUMBER",

	LBRACE:   "{",
	RBRACE:   "}",
	LBRACKET: "[",
	RBRACKET: "]",
	COMMA:    ",",

	FUNDING:       "funding",
	DESCRIPTION:   "description",
	CURRENCY:      "currency",
	MIN_AMOUNT:    "min_amount",
	MAX_AMOUNT:    "max_amount",
	BENEFICIARIES: "beneficiaries",
	BENEFICIARY:   "beneficiary",
	EMAIL:         "email",
	GITHUB:        "github",
	WEBSITE:       "website",
	SOURCES:       "sources",
	TYPE:          "type",
	ACTIVE:        "active",
	URL:           "url",
	CONFIG:        "config",
	TIERS:         "tiers",
	TIER:          "tier",
	AMOUNT:        "amount",
	MAX_SPONSORS:  "max_sponsors",
	BENEFITS:      "benefits",
	GOALS:         "goals",
	GOAL:          "goal",
	TARGET:        "target",
	CURRENT:       "current",
	DEADLINE:      "deadline",
	TRUE:          "true",
	FALSE:         "false",
}

// keywords maps keyword spellings to their token types.
// The DSL is case-sensitive; keywords are always lowercase.
var keywords = map[string]Type{
	"funding":       FUNDING,
	"description":   DESCRIPTION,
	"currency":      CURRENCY,
	"min_amount":    MIN_AMOUNT,
	"max_amount":    MAX_AMOUNT,
	"beneficiaries": BENEFICIARIES,
	"beneficiary":   BENEFICIARY,
	"email":         EMAIL,
	"github":        GITHUB,
	"website":       WEBSITE,
	"sources":       SOURCES,
	"type":          TYPE,
	"active":        ACTIVE,
	"url":           URL,
	"config":        CONFIG,
	"tiers":         TIERS,
	"tier":          TIER,
	"amount":        AMOUNT,
	"max_sponsors":  MAX_SPONSORS,
	"benefits":      BENEFITS,
	"goals":         GOALS,
	"goal":          GOAL,
	"target":        TARGET,
	"current":       CURRENT,
	"deadline":      DEADLINE,
	"true":          TRUE,
	"false":         FALSE,
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "TOKEN(?)"
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return t >= FUNDING && t <= FALSE
}

// Token represents a lexical token with position information.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}
