package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/shopspring/decimal"
)

// Build constructs the semantic model from a parsed document. Literal
// coercion happens here: currency, platform, and funding type names
// become enum values, deadline strings become dates, and numeric
// literals become decimal amounts. Any coercion failure or missing
// required field aborts the build with a BuildError naming the field
// and containing entity.
func Build(decl *FundingDecl) (*core.Configuration, error) {
	entity := fmt.Sprintf("funding %q", decl.ProjectName.Value)

	cfg := &core.Configuration{
		ProjectName:       decl.ProjectName.Value,
		PreferredCurrency: core.USD,
	}
	if decl.Description != nil {
		cfg.Description = decl.Description.Value
	}
	if decl.Currency != nil {
		currency, err := core.ParseCurrency(decl.Currency.Value)
		if err != nil {
			return nil, &BuildError{Entity: entity, Field: "currency", Message: err.Error()}
		}
		cfg.PreferredCurrency = currency
	}

	if decl.MinAmount != nil {
		amount, err := buildAmount(decl.MinAmount, cfg.PreferredCurrency, entity, "min_amount")
		if err != nil {
			return nil, err
		}
		cfg.MinAmount = &amount
	}
	if decl.MaxAmount != nil {
		amount, err := buildAmount(decl.MaxAmount, cfg.PreferredCurrency, entity, "max_amount")
		if err != nil {
			return nil, err
		}
		cfg.MaxAmount = &amount
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

// buildAmount coerces an amount field into a CurrencyAmount, resolving
// an omitted currency code to the configuration's preferred currency.
func buildAmount(f *AmountField, preferred core.Currency, entity, field string) (core.CurrencyAmount, error) {
	currency := preferred
	if f.Currency != nil {
		parsed, err := core.ParseCurrency(f.Currency.Value)
		if err != nil {
			return core.CurrencyAmount{}, &BuildError{Entity: entity, Field: field, Message: err.Error()}
		}
		currency = parsed
	}
	amount, err := core.ParseAmount(f.Literal, currency)
	if err != nil {
		return core.CurrencyAmount{}, &BuildError{Entity: entity, Field: field, Message: err.Error()}
	}
	return amount, nil
}

func buildBeneficiary(decl *BeneficiaryDecl) *core.Beneficiary {
	b := &core.Beneficiary{Name: decl.Name.Value}
	if decl.Email != nil {
		b.Email = decl.Email.Value
	}
	if decl.GitHub != nil {
		b.GitHubUsername = decl.GitHub.Value
	}
	if decl.Website != nil {
		b.Website = decl.Website.Value
	}
	if decl.Description != nil {
		b.Description = decl.Description.Value
	}
	return b
}

func buildSource(decl *SourceDecl) (*core.FundingSource, error) {
	entity := fmt.Sprintf("source %q", decl.Username.Value)

	platform, err := core.ParsePlatform(decl.Platform.Value)
	if err != nil {
		return nil, &BuildError{Entity: entity, Field: "platform", Message: err.Error()}
	}

	s := &core.FundingSource{
		Platform: platform,
		Username: decl.Username.Value,
		Type:     core.Both,
		IsActive: true,
	}
	if decl.Type != nil {
		fundingType, err := core.ParseFundingType(decl.Type.Value)
		if err != nil {
			return nil, &BuildError{Entity: entity, Field: "type", Message: err.Error()}
		}
		s.Type = fundingType
	}
	if decl.Active != nil {
		s.IsActive = decl.Active.Value
	}
	if decl.URL != nil {
		s.CustomURL = decl.URL.Value
	}
	if len(decl.Config) > 0 {
		s.Config = make(map[string]string, len(decl.Config))
		for _, entry := range decl.Config {
			s.Config[entry.Key] = entry.Value
		}
	}
	return s, nil
}

func buildTier(decl *TierDecl, preferred core.Currency) (*core.Tier, error) {
	entity := fmt.Sprintf("tier %q", decl.Name.Value)

	if decl.Amount.Literal == "" {
		return nil, &BuildError{Entity: entity, Field: "amount", Message: "required field is missing"}
	}
	amount, err := buildAmount(&decl.Amount, preferred, entity, "amount")
	if err != nil {
		return nil, err
	}

	t := &core.Tier{
		Name:     decl.Name.Value,
		Amount:   amount,
		IsActive: true,
	}
	if decl.Description != nil {
		t.Description = decl.Description.Value
	}
	if decl.MaxSponsors != nil {
		n, err := strconv.Atoi(decl.MaxSponsors.Literal)
		if err != nil {
			return nil, &BuildError{Entity: entity, Field: "max_sponsors", Message: fmt.Sprintf("invalid integer %q", decl.MaxSponsors.Literal)}
		}
		if n <= 0 {
			return nil, &BuildError{Entity: entity, Field: "max_sponsors", Message: "must be a positive integer"}
		}
		t.MaxSponsors = n
	}
	for _, b := range decl.Benefits {
		t.Benefits = append(t.Benefits, b.Value)
	}
	return t, nil
}

func buildGoal(decl *GoalDecl, preferred core.Currency) (*core.Goal, error) {
	entity := fmt.Sprintf("goal %q", decl.Name.Value)

	if decl.Target.Literal == "" {
		return nil, &BuildError{Entity: entity, Field: "target", Message: "required field is missing"}
	}
	target, err := buildAmount(&decl.Target, preferred, entity, "target")
	if err != nil {
		return nil, err
	}

	g := &core.Goal{
		Name:   decl.Name.Value,
		Target: target,
		// Progress starts at zero in the target's currency unless the
		// document says otherwise.
		Current: core.NewAmount(decimal.Zero, target.Currency),
	}
	if decl.Current != nil {
		current, err := buildAmount(decl.Current, preferred, entity, "current")
		if err != nil {
			return nil, err
		}
		g.Current = current
	}
	if decl.Deadline != nil {
		deadline, err := time.Parse(core.DeadlineLayout, decl.Deadline.Value)
		if err != nil {
			return nil, &BuildError{Entity: entity, Field: "deadline", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", decl.Deadline.Value)}
		}
		g.Deadline = &deadline
	}
	if decl.Description != nil {
		g.Description = decl.Description.Value
	}
	return g, nil
}
