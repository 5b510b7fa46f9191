package parser

import (
	"fmt"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/fundinglabs/fundingdsl/pkg/token"
)

// parseFunding parses the root declaration:
//
//	config → "funding" STRING "{" config_body "}"
func (p *Parser) parseFunding() *FundingDecl {
	decl := &FundingDecl{Pos: p.token.Pos}

	if !p.expect(token.FUNDING) {
		return nil
	}
	if !p.check(token.STRING) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.STRING))
		return nil
	}
	decl.ProjectName = StringField{Value: p.token.Literal, Pos: p.token.Pos}
	p.nextToken()

	if !p.expect(token.LBRACE) {
		return nil
	}

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		switch p.token.Type {
		case token.DESCRIPTION:
			if decl.Description != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "description"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Description = &f
			}
		case token.CURRENCY:
			if decl.Currency != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "currency"))
				return nil
			}
			if f, ok := p.parseIdentValue(); ok {
				decl.Currency = &f
			}
		case token.MIN_AMOUNT:
			if decl.MinAmount != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "min_amount"))
				return nil
			}
			if f, ok := p.parseAmountValue(); ok {
				decl.MinAmount = &f
			}
		case token.MAX_AMOUNT:
			if decl.MaxAmount != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "max_amount"))
				return nil
			}
			if f, ok := p.parseAmountValue(); ok {
				decl.MaxAmount = &f
			}
		case token.BENEFICIARIES:
			decl.Beneficiaries = append(decl.Beneficiaries, p.parseBeneficiariesBlock()...)
		case token.SOURCES:
			decl.Sources = append(decl.Sources, p.parseSourcesBlock()...)
		case token.TIERS:
			decl.Tiers = append(decl.Tiers, p.parseTiersBlock()...)
		case token.GOALS:
			decl.Goals = append(decl.Goals, p.parseGoalsBlock()...)
		default:
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "funding"))
			return nil
		}
	}

	if !p.expect(token.RBRACE) {
		return nil
	}
	if !p.check(token.EOF) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.EOF))
		return nil
	}
	return decl
}

// parseBeneficiariesBlock parses:
//
//	beneficiaries_block → "beneficiaries" "{" beneficiary* "}"
func (p *Parser) parseBeneficiariesBlock() []*BeneficiaryDecl {
	p.nextToken() // consume "beneficiaries"
	if !p.expect(token.LBRACE) {
		return nil
	}

	var decls []*BeneficiaryDecl
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		if !p.check(token.BENEFICIARY) {
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "beneficiaries"))
			return nil
		}
		if b := p.parseBeneficiary(); b != nil {
			decls = append(decls, b)
		}
	}

	p.expect(token.RBRACE)
	return decls
}

// parseBeneficiary parses:
//
//	beneficiary → "beneficiary" STRING "{" (email|github|website|description)* "}"
func (p *Parser) parseBeneficiary() *BeneficiaryDecl {
	decl := &BeneficiaryDecl{Pos: p.token.Pos}

	name, ok := p.parseStringValue() // consumes "beneficiary" + name
	if !ok {
		return nil
	}
	decl.Name = name

	if !p.expect(token.LBRACE) {
		return nil
	}

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		switch p.token.Type {
		case token.EMAIL:
			if decl.Email != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "email"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Email = &f
			}
		case token.GITHUB:
			if decl.GitHub != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "github"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.GitHub = &f
			}
		case token.WEBSITE:
			if decl.Website != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "website"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Website = &f
			}
		case token.DESCRIPTION:
			if decl.Description != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "description"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Description = &f
			}
		default:
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "beneficiary"))
			return nil
		}
	}

	p.expect(token.RBRACE)
	return decl
}

// parseSourcesBlock parses:
//
//	sources_block → "sources" "{" source* "}"
func (p *Parser) parseSourcesBlock() []*SourceDecl {
	p.nextToken() // consume "sources"
	if !p.expect(token.LBRACE) {
		return nil
	}

	var decls []*SourceDecl
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		if s := p.parseSource(); s != nil {
			decls = append(decls, s)
		}
	}

	p.expect(token.RBRACE)
	return decls
}

// parseSource parses:
//
//	source → PLATFORM STRING "{" (type|active|url|config_block)* "}"
//
// The platform heading lexes as a plain identifier; membership in the
// supported platform set is checked here so an unknown platform fails
// with its source position.
func (p *Parser) parseSource() *SourceDecl {
	if !p.check(token.IDENT) {
		p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "sources"))
		return nil
	}
	if !core.IsPlatform(p.token.Literal) {
		p.addError(fmt.Sprintf(errUnknownPlatform, p.token.Literal))
		return nil
	}

	decl := &SourceDecl{
		Platform: IdentField{Value: p.token.Literal, Pos: p.token.Pos},
		Pos:      p.token.Pos,
	}

	username, ok := p.parseStringValue() // consumes platform + username
	if !ok {
		return nil
	}
	decl.Username = username

	if !p.expect(token.LBRACE) {
		return nil
	}

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		switch p.token.Type {
		case token.TYPE:
			if decl.Type != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "type"))
				return nil
			}
			if f, ok := p.parseIdentValue(); ok {
				decl.Type = &f
			}
		case token.ACTIVE:
			if decl.Active != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "active"))
				return nil
			}
			if f, ok := p.parseBoolValue(); ok {
				decl.Active = &f
			}
		case token.URL:
			if decl.URL != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "url"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.URL = &f
			}
		case token.CONFIG:
			if decl.Config != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "config"))
				return nil
			}
			decl.Config = p.parseConfigBlock()
		default:
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "source"))
			return nil
		}
	}

	p.expect(token.RBRACE)
	return decl
}

// parseConfigBlock parses a source's free-form settings:
//
//	config_block → "config" "{" (STRING STRING)* "}"
func (p *Parser) parseConfigBlock() []*ConfigEntry {
	p.nextToken() // consume "config"
	if !p.expect(token.LBRACE) {
		return nil
	}

	var entries []*ConfigEntry
	seen := make(map[string]bool)
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		if !p.check(token.STRING) {
			p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.STRING))
			return nil
		}
		entry := &ConfigEntry{Key: p.token.Literal, Pos: p.token.Pos}
		if seen[entry.Key] {
			p.addError(fmt.Sprintf(errDuplicateConfigKey, entry.Key))
			return nil
		}
		seen[entry.Key] = true
		p.nextToken()

		if !p.check(token.STRING) {
			p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.STRING))
			return nil
		}
		entry.Value = p.token.Literal
		p.nextToken()

		entries = append(entries, entry)
	}

	p.expect(token.RBRACE)
	return entries
}

// parseTiersBlock parses:
//
//	tiers_block → "tiers" "{" tier* "}"
func (p *Parser) parseTiersBlock() []*TierDecl {
	p.nextToken() // consume "tiers"
	if !p.expect(token.LBRACE) {
		return nil
	}

	var decls []*TierDecl
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		if !p.check(token.TIER) {
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "tiers"))
			return nil
		}
		if t := p.parseTier(); t != nil {
			decls = append(decls, t)
		}
	}

	p.expect(token.RBRACE)
	return decls
}

// parseTier parses:
//
//	tier → "tier" STRING "{" (amount|description|max_sponsors|benefits)* "}"
func (p *Parser) parseTier() *TierDecl {
	decl := &TierDecl{Pos: p.token.Pos}

	name, ok := p.parseStringValue() // consumes "tier" + name
	if !ok {
		return nil
	}
	decl.Name = name

	if !p.expect(token.LBRACE) {
		return nil
	}

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		switch p.token.Type {
		case token.AMOUNT:
			if decl.Amount.Literal != "" {
				p.addError(fmt.Sprintf(errDuplicateField, "amount"))
				return nil
			}
			if f, ok := p.parseAmountValue(); ok {
				decl.Amount = f
			}
		case token.DESCRIPTION:
			if decl.Description != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "description"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Description = &f
			}
		case token.MAX_SPONSORS:
			if decl.MaxSponsors != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "max_sponsors"))
				return nil
			}
			if f, ok := p.parseNumberValue(); ok {
				decl.MaxSponsors = &f
			}
		case token.BENEFITS:
			if decl.Benefits != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "benefits"))
				return nil
			}
			decl.Benefits = p.parseBenefitsList()
		default:
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "tier"))
			return nil
		}
	}

	p.expect(token.RBRACE)
	return decl
}

// parseBenefitsList parses:
//
//	benefits → "benefits" "[" STRING ("," STRING)* "]"
func (p *Parser) parseBenefitsList() []StringField {
	p.nextToken() // consume "benefits"
	if !p.expect(token.LBRACKET) {
		return nil
	}

	var benefits []StringField
	for !p.check(token.RBRACKET) && !p.check(token.EOF) && !p.failed() {
		if !p.check(token.STRING) {
			p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.STRING))
			return nil
		}
		benefits = append(benefits, StringField{Value: p.token.Literal, Pos: p.token.Pos})
		p.nextToken()

		if !p.match(token.COMMA) {
			break
		}
	}

	p.expect(token.RBRACKET)
	return benefits
}

// parseGoalsBlock parses:
//
//	goals_block → "goals" "{" goal* "}"
func (p *Parser) parseGoalsBlock() []*GoalDecl {
	p.nextToken() // consume "goals"
	if !p.expect(token.LBRACE) {
		return nil
	}

	var decls []*GoalDecl
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		if !p.check(token.GOAL) {
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "goals"))
			return nil
		}
		if g := p.parseGoal(); g != nil {
			decls = append(decls, g)
		}
	}

	p.expect(token.RBRACE)
	return decls
}

// parseGoal parses:
//
//	goal → "goal" STRING "{" (target|current|deadline|description)* "}"
func (p *Parser) parseGoal() *GoalDecl {
	decl := &GoalDecl{Pos: p.token.Pos}

	name, ok := p.parseStringValue() // consumes "goal" + name
	if !ok {
		return nil
	}
	decl.Name = name

	if !p.expect(token.LBRACE) {
		return nil
	}

	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.failed() {
		switch p.token.Type {
		case token.TARGET:
			if decl.Target.Literal != "" {
				p.addError(fmt.Sprintf(errDuplicateField, "target"))
				return nil
			}
			if f, ok := p.parseAmountValue(); ok {
				decl.Target = f
			}
		case token.CURRENT:
			if decl.Current != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "current"))
				return nil
			}
			if f, ok := p.parseAmountValue(); ok {
				decl.Current = &f
			}
		case token.DEADLINE:
			if decl.Deadline != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "deadline"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Deadline = &f
			}
		case token.DESCRIPTION:
			if decl.Description != nil {
				p.addError(fmt.Sprintf(errDuplicateField, "description"))
				return nil
			}
			if f, ok := p.parseStringValue(); ok {
				decl.Description = &f
			}
		default:
			p.addError(fmt.Sprintf(errUnknownKey, p.token.Literal, "goal"))
			return nil
		}
	}

	p.expect(token.RBRACE)
	return decl
}
