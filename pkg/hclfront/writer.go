package hclfront

import (
	"sort"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Write renders a configuration as an HCL document that Parse accepts.
// Amounts in the preferred currency are written as numbers; other
// amounts become strings with their currency code.
func Write(cfg *core.Configuration) string {
	file := hclwrite.NewEmptyFile()
	root := file.Body()

	funding := root.AppendNewBlock("funding", []string{cfg.ProjectName}).Body()
	if cfg.Description != "" {
		funding.SetAttributeValue("description", cty.StringVal(cfg.Description))
	}
	funding.SetAttributeValue("currency", cty.StringVal(string(cfg.PreferredCurrency)))
	if cfg.MinAmount != nil {
		funding.SetAttributeValue("min_amount", amountVal(*cfg.MinAmount, cfg.PreferredCurrency))
	}
	if cfg.MaxAmount != nil {
		funding.SetAttributeValue("max_amount", amountVal(*cfg.MaxAmount, cfg.PreferredCurrency))
	}

	for _, b := range cfg.Beneficiaries {
		funding.AppendNewline()
		body := funding.AppendNewBlock("beneficiary", []string{b.Name}).Body()
		if b.Email != "" {
			body.SetAttributeValue("email", cty.StringVal(b.Email))
		}
		if b.GitHubUsername != "" {
			body.SetAttributeValue("github", cty.StringVal(b.GitHubUsername))
		}
		if b.Website != "" {
			body.SetAttributeValue("website", cty.StringVal(b.Website))
		}
		if b.Description != "" {
			body.SetAttributeValue("description", cty.StringVal(b.Description))
		}
	}

	for _, s := range cfg.Sources {
		funding.AppendNewline()
		body := funding.AppendNewBlock("source", []string{string(s.Platform), s.Username}).Body()
		body.SetAttributeValue("type", cty.StringVal(string(s.Type)))
		body.SetAttributeValue("active", cty.BoolVal(s.IsActive))
		if s.CustomURL != "" {
			body.SetAttributeValue("url", cty.StringVal(s.CustomURL))
		}
		if len(s.Config) > 0 {
			body.SetAttributeValue("config", configVal(s.Config))
		}
	}

	for _, t := range cfg.Tiers {
		funding.AppendNewline()
		body := funding.AppendNewBlock("tier", []string{t.Name}).Body()
		body.SetAttributeValue("amount", amountVal(t.Amount, cfg.PreferredCurrency))
		if t.Description != "" {
			body.SetAttributeValue("description", cty.StringVal(t.Description))
		}
		if t.MaxSponsors > 0 {
			body.SetAttributeValue("max_sponsors", cty.NumberIntVal(int64(t.MaxSponsors)))
		}
		if len(t.Benefits) > 0 {
			values := make([]cty.Value, len(t.Benefits))
			for i, benefit := range t.Benefits {
				values[i] = cty.StringVal(benefit)
			}
			body.SetAttributeValue("benefits", cty.ListVal(values))
		}
	}

	for _, g := range cfg.Goals {
		funding.AppendNewline()
		body := funding.AppendNewBlock("goal", []string{g.Name}).Body()
		body.SetAttributeValue("target", amountVal(g.Target, cfg.PreferredCurrency))
		body.SetAttributeValue("current", amountVal(g.Current, cfg.PreferredCurrency))
		if g.Deadline != nil {
			body.SetAttributeValue("deadline", cty.StringVal(g.Deadline.Format(core.DeadlineLayout)))
		}
		if g.Description != "" {
			body.SetAttributeValue("description", cty.StringVal(g.Description))
		}
	}

	return string(file.Bytes())
}

func amountVal(a core.CurrencyAmount, preferred core.Currency) cty.Value {
	if a.Currency == preferred {
		return cty.MustParseNumberVal(a.Value.String())
	}
	return cty.StringVal(a.Value.String() + " " + string(a.Currency))
}

func configVal(config map[string]string) cty.Value {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]cty.Value, len(config))
	for _, k := range keys {
		values[k] = cty.StringVal(config[k])
	}
	return cty.MapVal(values)
}
