package core

import (
	"fmt"
	"strings"
)

// tideliftPlatforms are the package ecosystems Tidelift accepts as the
// prefix of a "platform-name/package-name" username.
var tideliftPlatforms = map[string]bool{
	"npm":       true,
	"pypi":      true,
	"rubygems":  true,
	"maven":     true,
	"packagist": true,
	"nuget":     true,
}

// Validate runs semantic checks over a configuration and returns one
// description per violation. It never mutates the configuration and an
// invalid configuration is still fully usable.
//
// The result order is deterministic: configuration-level checks first,
// then beneficiaries, sources, tiers, and goals, each in declaration
// order with a fixed check order per entity. A name duplicated N times
// yields a single uniqueness finding.
func Validate(c *Configuration) []string {
	var errs []string

	if c.ProjectName == "" {
		errs = append(errs, "project name is required")
	}
	if c.MinAmount != nil && c.MaxAmount != nil {
		if cmp, err := c.MinAmount.Cmp(*c.MaxAmount); err == nil && cmp > 0 {
			errs = append(errs, fmt.Sprintf("min_amount %s exceeds max_amount %s", c.MinAmount, c.MaxAmount))
		}
	}

	errs = append(errs, validateBeneficiaries(c.Beneficiaries)...)
	errs = append(errs, validateSources(c.Sources)...)
	errs = append(errs, validateTiers(c.Tiers)...)
	errs = append(errs, validateGoals(c.Goals)...)

	return errs
}

func validateBeneficiaries(beneficiaries []*Beneficiary) []string {
	var errs []string
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for _, b := range beneficiaries {
		if b.Name == "" {
			errs = append(errs, "beneficiary name must not be empty")
			continue
		}
		if seen[b.Name] && !reported[b.Name] {
			errs = append(errs, fmt.Sprintf("duplicate beneficiary name %q", b.Name))
			reported[b.Name] = true
		}
		seen[b.Name] = true
	}
	return errs
}

func validateSources(sources []*FundingSource) []string {
	var errs []string
	for _, s := range sources {
		if s.Username == "" {
			errs = append(errs, fmt.Sprintf("username is required for %s source", s.Platform))
		}
		switch s.Platform {
		case PlatformCustom:
			if s.CustomURL == "" {
				errs = append(errs, fmt.Sprintf("custom source %q requires a url", s.Username))
			}
		case PlatformTidelift:
			parts := strings.SplitN(s.Username, "/", 2)
			if len(parts) != 2 || parts[1] == "" {
				errs = append(errs, fmt.Sprintf("tidelift username %q must be in platform-name/package-name format", s.Username))
			} else if !tideliftPlatforms[parts[0]] {
				errs = append(errs, fmt.Sprintf("tidelift platform %q is not a known package ecosystem", parts[0]))
			}
		case PlatformThanksDev:
			if !strings.HasPrefix(s.Username, "u/gh/") {
				errs = append(errs, fmt.Sprintf("thanks_dev username %q must be in u/gh/username format", s.Username))
			}
		}
	}
	return errs
}

func validateTiers(tiers []*Tier) []string {
	var errs []string
	seenNames := make(map[string]bool)
	reportedNames := make(map[string]bool)
	seenAmounts := make(map[string]string) // amount key -> first tier name
	for _, t := range tiers {
		if !t.Amount.IsPositive() {
			errs = append(errs, fmt.Sprintf("tier %q amount must be greater than zero", t.Name))
		}
		if seenNames[t.Name] && !reportedNames[t.Name] {
			errs = append(errs, fmt.Sprintf("duplicate tier name %q", t.Name))
			reportedNames[t.Name] = true
		}
		seenNames[t.Name] = true

		// Duplicate prices are legal but suspicious; reported per
		// duplicated tier so each offender is named.
		key := string(t.Amount.Currency) + ":" + t.Amount.Value.String()
		if first, dup := seenAmounts[key]; dup {
			errs = append(errs, fmt.Sprintf("tier %q repeats the %s price of tier %q", t.Name, t.Amount, first))
		} else {
			seenAmounts[key] = t.Name
		}
	}
	return errs
}

func validateGoals(goals []*Goal) []string {
	var errs []string
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for _, g := range goals {
		if !g.Target.IsPositive() {
			errs = append(errs, fmt.Sprintf("goal %q target_amount must be greater than zero", g.Name))
		}
		if g.Current.Value.IsNegative() {
			errs = append(errs, fmt.Sprintf("goal %q current_amount must not be negative", g.Name))
		}
		if seen[g.Name] && !reported[g.Name] {
			errs = append(errs, fmt.Sprintf("duplicate goal name %q", g.Name))
			reported[g.Name] = true
		}
		seen[g.Name] = true
	}
	return errs
}
