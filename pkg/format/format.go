package format

import (
	"fmt"

	"github.com/fundinglabs/fundingdsl/pkg/core"
)

// Format renders a configuration as canonical funding DSL text.
// Defaults are written out explicitly (source type and active flag),
// amounts in the preferred currency omit their currency code at the
// configuration level, and every other amount carries its code.
func Format(cfg *core.Configuration) string {
	p := newPrinter()
	p.formatConfiguration(cfg)
	return p.String()
}

func (p *printer) formatConfiguration(cfg *core.Configuration) {
	p.writeln(fmt.Sprintf("funding %s {", quote(cfg.ProjectName)))
	p.indent()

	if cfg.Description != "" {
		p.writeln(fmt.Sprintf("description %s", quote(cfg.Description)))
	}
	p.writeln(fmt.Sprintf("currency %s", cfg.PreferredCurrency))
	if cfg.MinAmount != nil {
		p.writeln(fmt.Sprintf("min_amount %s", p.amount(*cfg.MinAmount, cfg.PreferredCurrency)))
	}
	if cfg.MaxAmount != nil {
		p.writeln(fmt.Sprintf("max_amount %s", p.amount(*cfg.MaxAmount, cfg.PreferredCurrency)))
	}

	if len(cfg.Beneficiaries) > 0 {
		p.blank()
		p.formatBeneficiaries(cfg.Beneficiaries)
	}
	if len(cfg.Sources) > 0 {
		p.blank()
		p.formatSources(cfg.Sources)
	}
	if len(cfg.Tiers) > 0 {
		p.blank()
		p.formatTiers(cfg.Tiers)
	}
	if len(cfg.Goals) > 0 {
		p.blank()
		p.formatGoals(cfg.Goals)
	}

	p.dedent()
	p.writeln("}")
}

// amount renders an amount, omitting the currency code when it matches
// the configuration's preferred currency.
func (p *printer) amount(a core.CurrencyAmount, preferred core.Currency) string {
	if a.Currency == preferred {
		return a.Value.String()
	}
	return a.Value.String() + " " + string(a.Currency)
}

func (p *printer) formatBeneficiaries(beneficiaries []*core.Beneficiary) {
	p.writeln("beneficiaries {")
	p.indent()
	for i, b := range beneficiaries {
		if i > 0 {
			p.blank()
		}
		p.writeln(fmt.Sprintf("beneficiary %s {", quote(b.Name)))
		p.indent()
		if b.Email != "" {
			p.writeln(fmt.Sprintf("email %s", quote(b.Email)))
		}
		if b.GitHubUsername != "" {
			p.writeln(fmt.Sprintf("github %s", quote(b.GitHubUsername)))
		}
		if b.Website != "" {
			p.writeln(fmt.Sprintf("website %s", quote(b.Website)))
		}
		if b.Description != "" {
			p.writeln(fmt.Sprintf("description %s", quote(b.Description)))
		}
		p.dedent()
		p.writeln("}")
	}
	p.dedent()
	p.writeln("}")
}

func (p *printer) formatSources(sources []*core.FundingSource) {
	p.writeln("sources {")
	p.indent()
	for i, s := range sources {
		if i > 0 {
			p.blank()
		}
		p.writeln(fmt.Sprintf("%s %s {", s.Platform, quote(s.Username)))
		p.indent()
		p.writeln(fmt.Sprintf("type %s", s.Type))
		p.writeln(fmt.Sprintf("active %t", s.IsActive))
		if s.CustomURL != "" {
			p.writeln(fmt.Sprintf("url %s", quote(s.CustomURL)))
		}
		if len(s.Config) > 0 {
			p.formatConfig(s.Config)
		}
		p.dedent()
		p.writeln("}")
	}
	p.dedent()
	p.writeln("}")
}

func (p *printer) formatConfig(config map[string]string) {
	p.writeln("config {")
	p.indent()
	for _, key := range sortedKeys(config) {
		p.writeln(fmt.Sprintf("%s %s", quote(key), quote(config[key])))
	}
	p.dedent()
	p.writeln("}")
}

func (p *printer) formatTiers(tiers []*core.Tier) {
	p.writeln("tiers {")
	p.indent()
	for i, t := range tiers {
		if i > 0 {
			p.blank()
		}
		p.writeln(fmt.Sprintf("tier %s {", quote(t.Name)))
		p.indent()
		p.writeln(fmt.Sprintf("amount %s %s", t.Amount.Value, t.Amount.Currency))
		if t.Description != "" {
			p.writeln(fmt.Sprintf("description %s", quote(t.Description)))
		}
		if t.MaxSponsors > 0 {
			p.writeln(fmt.Sprintf("max_sponsors %d", t.MaxSponsors))
		}
		if len(t.Benefits) > 0 {
			p.writeln("benefits [")
			p.indent()
			for j, benefit := range t.Benefits {
				suffix := ","
				if j == len(t.Benefits)-1 {
					suffix = ""
				}
				p.writeln(quote(benefit) + suffix)
			}
			p.dedent()
			p.writeln("]")
		}
		p.dedent()
		p.writeln("}")
	}
	p.dedent()
	p.writeln("}")
}

func (p *printer) formatGoals(goals []*core.Goal) {
	p.writeln("goals {")
	p.indent()
	for i, g := range goals {
		if i > 0 {
			p.blank()
		}
		p.writeln(fmt.Sprintf("goal %s {", quote(g.Name)))
		p.indent()
		p.writeln(fmt.Sprintf("target %s %s", g.Target.Value, g.Target.Currency))
		p.writeln(fmt.Sprintf("current %s %s", g.Current.Value, g.Current.Currency))
		if g.Deadline != nil {
			p.writeln(fmt.Sprintf("deadline %s", quote(g.Deadline.Format(core.DeadlineLayout))))
		}
		if g.Description != "" {
			p.writeln(fmt.Sprintf("description %s", quote(g.Description)))
		}
		p.dedent()
		p.writeln("}")
	}
	p.dedent()
	p.writeln("}")
}
