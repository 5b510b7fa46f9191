// Package hclfront provides an alternate HCL front-end for funding
// configurations. It exists to prove the front-end contract: two
// independent parsers producing structurally equal configurations for
// equivalent documents. The surface syntax differs from the native DSL
// (attributes use `=`, labels replace inline headings), but the
// semantic model is identical.
//
// Example document:
//
//	funding "Demo" {
//	  currency   = "EUR"
//	  min_amount = 2.0
//
//	  source "github_sponsors" "alice-dev" {
//	    type   = "both"
//	    active = true
//	  }
//
//	  tier "Coffee" {
//	    amount   = 5.0
//	    benefits = ["Thanks"]
//	  }
//	}
//
// Amounts are numbers in the preferred currency, or strings with an
// explicit code such as "125.0 EUR".
package hclfront

import (
	"fmt"
	"strings"
	"time"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/fundinglabs/fundingdsl/pkg/parser"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

type hclDocument struct {
	Funding *hclFunding `hcl:"funding,block"`
}

type hclFunding struct {
	Name          string            `hcl:"name,label"`
	Description   *string           `hcl:"description,optional"`
	Currency      *string           `hcl:"currency,optional"`
	MinAmount     cty.Value         `hcl:"min_amount,optional"`
	MaxAmount     cty.Value         `hcl:"max_amount,optional"`
	Beneficiaries []*hclBeneficiary `hcl:"beneficiary,block"`
	Sources       []*hclSource      `hcl:"source,block"`
	Tiers         []*hclTier        `hcl:"tier,block"`
	Goals         []*hclGoal        `hcl:"goal,block"`
}

type hclBeneficiary struct {
	Name        string  `hcl:"name,label"`
	Email       *string `hcl:"email,optional"`
	GitHub      *string `hcl:"github,optional"`
	Website     *string `hcl:"website,optional"`
	Description *string `hcl:"description,optional"`
}

type hclSource struct {
	Platform string            `hcl:"platform,label"`
	Username string            `hcl:"username,label"`
	Type     *string           `hcl:"type,optional"`
	Active   *bool             `hcl:"active,optional"`
	URL      *string           `hcl:"url,optional"`
	Config   map[string]string `hcl:"config,optional"`
}

type hclTier struct {
	Name        string    `hcl:"name,label"`
	Amount      cty.Value `hcl:"amount"`
	Description *string   `hcl:"description,optional"`
	MaxSponsors *int      `hcl:"max_sponsors,optional"`
	Benefits    []string  `hcl:"benefits,optional"`
}

type hclGoal struct {
	Name        string    `hcl:"name,label"`
	Target      cty.Value `hcl:"target"`
	Current     cty.Value `hcl:"current,optional"`
	Deadline    *string   `hcl:"deadline,optional"`
	Description *string   `hcl:"description,optional"`
}

// Parse builds a configuration from HCL text. Parse and decode
// failures surface the HCL diagnostics; coercion failures use the same
// build-error taxonomy as the native front-end.
func Parse(text string) (*core.Configuration, error) {
	p := hclparse.NewParser()
	file, diags := p.ParseHCL([]byte(text), "funding.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL document: %s", diags.Error())
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL document: %s", diags.Error())
	}
	if doc.Funding == nil {
		return nil, fmt.Errorf("document has no funding block")
	}

	return buildConfiguration(doc.Funding)
}

func buildConfiguration(decl *hclFunding) (*core.Configuration, error) {
	entity := fmt.Sprintf("funding %q", decl.Name)

	cfg := &core.Configuration{
		ProjectName:       decl.Name,
		PreferredCurrency: core.USD,
	}
	if decl.Description != nil {
		cfg.Description = *decl.Description
	}
	if decl.Currency != nil {
		currency, err := core.ParseCurrency(*decl.Currency)
		if err != nil {
			return nil, &parser.BuildError{Entity: entity, Field: "currency", Message: err.Error()}
		}
		cfg.PreferredCurrency = currency
	}

	var err error
	if cfg.MinAmount, err = amountPtrFromCty(decl.MinAmount, cfg.PreferredCurrency, entity, "min_amount"); err != nil {
		return nil, err
	}
	if cfg.MaxAmount, err = amountPtrFromCty(decl.MaxAmount, cfg.PreferredCurrency, entity, "max_amount"); err != nil {
		return nil, err
	}

	for _, b := range decl.Beneficiaries {
		cfg.Beneficiaries = append(cfg.Beneficiaries, buildBeneficiary(b))
	}
	for _, s := range decl.Sources {
		source, err := buildSource(s)
		if err != nil {
			return nil, err
		}
		cfg.Sources = append(cfg.Sources, source)
	}
	for _, t := range decl.Tiers {
		tier, err := buildTier(t, cfg.PreferredCurrency)
		if err != nil {
			return nil, err
		}
		cfg.Tiers = append(cfg.Tiers, tier)
	}
	for _, g := range decl.Goals {
		goal, err := buildGoal(g, cfg.PreferredCurrency)
		if err != nil {
			return nil, err
		}
		cfg.Goals = append(cfg.Goals, goal)
	}

	return cfg, nil
}

func buildBeneficiary(decl *hclBeneficiary) *core.Beneficiary {
	b := &core.Beneficiary{Name: decl.Name}
	if decl.Email != nil {
		b.Email = *decl.Email
	}
	if decl.GitHub != nil {
		b.GitHubUsername = *decl.GitHub
	}
	if decl.Website != nil {
		b.Website = *decl.Website
	}
	if decl.Description != nil {
		b.Description = *decl.Description
	}
	return b
}

func buildSource(decl *hclSource) (*core.FundingSource, error) {
	entity := fmt.Sprintf("source %q", decl.Username)

	platform, err := core.ParsePlatform(decl.Platform)
	if err != nil {
		return nil, &parser.BuildError{Entity: entity, Field: "platform", Message: err.Error()}
	}

	s := &core.FundingSource{
		Platform: platform,
		Username: decl.Username,
		Type:     core.Both,
		IsActive: true,
	}
	if decl.Type != nil {
		fundingType, err := core.ParseFundingType(*decl.Type)
		if err != nil {
			return nil, &parser.BuildError{Entity: entity, Field: "type", Message: err.Error()}
		}
		s.Type = fundingType
	}
	if decl.Active != nil {
		s.IsActive = *decl.Active
	}
	if decl.URL != nil {
		s.CustomURL = *decl.URL
	}
	if len(decl.Config) > 0 {
		s.Config = decl.Config
	}
	return s, nil
}

func buildTier(decl *hclTier, preferred core.Currency) (*core.Tier, error) {
	entity := fmt.Sprintf("tier %q", decl.Name)

	amount, err := amountFromCty(decl.Amount, preferred, entity, "amount")
	if err != nil {
		return nil, err
	}

	t := &core.Tier{
		Name:     decl.Name,
		Amount:   amount,
		Benefits: decl.Benefits,
		IsActive: true,
	}
	if decl.Description != nil {
		t.Description = *decl.Description
	}
	if decl.MaxSponsors != nil {
		if *decl.MaxSponsors <= 0 {
			return nil, &parser.BuildError{Entity: entity, Field: "max_sponsors", Message: "must be a positive integer"}
		}
		t.MaxSponsors = *decl.MaxSponsors
	}
	return t, nil
}

func buildGoal(decl *hclGoal, preferred core.Currency) (*core.Goal, error) {
	entity := fmt.Sprintf("goal %q", decl.Name)

	target, err := amountFromCty(decl.Target, preferred, entity, "target")
	if err != nil {
		return nil, err
	}

	g := &core.Goal{
		Name:    decl.Name,
		Target:  target,
		Current: core.NewAmount(decimal.Zero, target.Currency),
	}
	if !decl.Current.IsNull() {
		current, err := amountFromCty(decl.Current, preferred, entity, "current")
		if err != nil {
			return nil, err
		}
		g.Current = current
	}
	if decl.Deadline != nil {
		deadline, err := time.Parse(core.DeadlineLayout, *decl.Deadline)
		if err != nil {
			return nil, &parser.BuildError{Entity: entity, Field: "deadline", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", *decl.Deadline)}
		}
		g.Deadline = &deadline
	}
	if decl.Description != nil {
		g.Description = *decl.Description
	}
	return g, nil
}

// amountFromCty coerces an HCL value into a CurrencyAmount. Numbers
// use the preferred currency; strings carry an optional explicit code,
// e.g. "125.0 EUR".
func amountFromCty(v cty.Value, preferred core.Currency, entity, field string) (core.CurrencyAmount, error) {
	if v.IsNull() {
		return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: "required field is missing"}
	}

	switch v.Type() {
	case cty.Number:
		literal := v.AsBigFloat().Text('f', -1)
		amount, err := core.ParseAmount(literal, preferred)
		if err != nil {
			return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: err.Error()}
		}
		return amount, nil
	case cty.String:
		parts := strings.Fields(v.AsString())
		currency := preferred
		switch len(parts) {
		case 0:
			return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: "empty amount"}
		case 1:
		case 2:
			parsed, err := core.ParseCurrency(parts[1])
			if err != nil {
				return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: err.Error()}
			}
			currency = parsed
		default:
			return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: fmt.Sprintf("invalid amount %q", v.AsString())}
		}
		amount, err := core.ParseAmount(parts[0], currency)
		if err != nil {
			return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: err.Error()}
		}
		return amount, nil
	}
	return core.CurrencyAmount{}, &parser.BuildError{Entity: entity, Field: field, Message: "amount must be a number or a string"}
}

func amountPtrFromCty(v cty.Value, preferred core.Currency, entity, field string) (*core.CurrencyAmount, error) {
	if v.IsNull() {
		return nil, nil
	}
	amount, err := amountFromCty(v, preferred, entity, field)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// hclFrontend adapts this package to the shared front-end contract.
type hclFrontend struct{}

func (hclFrontend) Name() string { return "hcl" }

func (hclFrontend) Parse(text string) (*core.Configuration, error) {
	return Parse(text)
}

func init() {
	core.RegisterFrontend(hclFrontend{})
}
