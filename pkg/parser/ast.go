package parser

import "github.com/fundinglabs/fundingdsl/pkg/token"

// The AST mirrors the surface syntax of a funding document. Every field
// wrapper carries the position of its value token so the builder can
// point at the offending literal when coercion fails. Optional fields
// are nil pointers; list-valued fields preserve source order.

// StringField is a quoted string value.
type StringField struct {
	Value string
	Pos   token.Position
}

// IdentField is a bare identifier value (platform name, currency code,
// funding type).
type IdentField struct {
	Value string
	Pos   token.Position
}

// NumberField is an unparsed numeric literal.
type NumberField struct {
	Literal string
	Pos     token.Position
}

// BoolField is a true/false value.
type BoolField struct {
	Value bool
	Pos   token.Position
}

// AmountField is a numeric literal with an optional trailing currency
// code. Currency is nil when the document leaves the amount in the
// configuration's preferred currency.
type AmountField struct {
	Literal  string
	Currency *IdentField
	Pos      token.Position
}

// ConfigEntry is one key-value pair in a source's config block.
// Entries keep declaration order.
type ConfigEntry struct {
	Key   string
	Value string
	Pos   token.Position
}

// FundingDecl is the root declaration of a document.
type FundingDecl struct {
	ProjectName   StringField
	Description   *StringField
	Currency      *IdentField
	MinAmount     *AmountField
	MaxAmount     *AmountField
	Beneficiaries []*BeneficiaryDecl
	Sources       []*SourceDecl
	Tiers         []*TierDecl
	Goals         []*GoalDecl
	Pos           token.Position
}

// BeneficiaryDecl is one entry in a beneficiaries block.
type BeneficiaryDecl struct {
	Name        StringField
	Email       *StringField
	GitHub      *StringField
	Website     *StringField
	Description *StringField
	Pos         token.Position
}

// SourceDecl is one entry in a sources block. Platform is the bare
// identifier heading the entry; its validity is checked at parse time.
type SourceDecl struct {
	Platform IdentField
	Username StringField
	Type     *IdentField
	Active   *BoolField
	URL      *StringField
	Config   []*ConfigEntry
	Pos      token.Position
}

// TierDecl is one entry in a tiers block.
type TierDecl struct {
	Name        StringField
	Amount      AmountField
	Description *StringField
	MaxSponsors *NumberField
	Benefits    []StringField
	Pos         token.Position
}

// GoalDecl is one entry in a goals block.
type GoalDecl struct {
	Name        StringField
	Target      AmountField
	Current     *AmountField
	Deadline    *StringField
	Description *StringField
	Pos         token.Position
}
