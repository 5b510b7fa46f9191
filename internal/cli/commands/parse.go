package commands

import (
	"fmt"

	"github.com/fundinglabs/fundingdsl/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a funding document and show a summary",
		Long: `Parse a funding document with the configured front-end and print a
summary of the resulting configuration. Fails on the first lexical,
syntactic, or model-building error with its source position.`,
		Example: `  # Parse with the native front-end
  fundingdsl parse funding.dsl

  # Parse an HCL document
  fundingdsl parse -f hcl funding.hcl

  # Machine-readable summary
  fundingdsl parse funding.dsl --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0])
		},
	}
}

type parseSummary struct {
	Project       string `json:"project"`
	Currency      string `json:"currency"`
	MinAmount     string `json:"min_amount,omitempty"`
	MaxAmount     string `json:"max_amount,omitempty"`
	Beneficiaries int    `json:"beneficiaries"`
	Sources       int    `json:"sources"`
	ActiveSources int    `json:"active_sources"`
	Tiers         int    `json:"tiers"`
	Goals         int    `json:"goals"`
}

func runParse(cmd *cobra.Command, path string) error {
	cfg, _, err := parseFile(cmd, path)
	if err != nil {
		return err
	}

	r := GetRenderer(cmd.Context())
	summary := parseSummary{
		Project:       cfg.ProjectName,
		Currency:      string(cfg.PreferredCurrency),
		Beneficiaries: len(cfg.Beneficiaries),
		Sources:       len(cfg.Sources),
		ActiveSources: len(cfg.ActiveSources()),
		Tiers:         len(cfg.Tiers),
		Goals:         len(cfg.Goals),
	}
	if cfg.MinAmount != nil {
		summary.MinAmount = cfg.MinAmount.String()
	}
	if cfg.MaxAmount != nil {
		summary.MaxAmount = cfg.MaxAmount.String()
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summary)
	}

	r.Header(fmt.Sprintf("Funding configuration %q", cfg.ProjectName))
	if cfg.Description != "" {
		r.Muted(cfg.Description)
	}
	r.Printf("Currency:      %s\n", summary.Currency)
	if summary.MinAmount != "" || summary.MaxAmount != "" {
		r.Printf("Amount range:  %s - %s\n", orDash(summary.MinAmount), orDash(summary.MaxAmount))
	}
	r.Printf("Beneficiaries: %d\n", summary.Beneficiaries)
	r.Printf("Sources:       %d (%d active)\n", summary.Sources, summary.ActiveSources)
	r.Printf("Tiers:         %d\n", summary.Tiers)
	r.Printf("Goals:         %d\n", summary.Goals)
	for _, g := range cfg.Goals {
		r.Printf("  %-28s %.1f%% of %s\n", g.Name, g.Progress(), g.Target)
	}
	r.Success("Parsed successfully")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
