package hclfront_test

import (
	"os"
	"testing"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/fundinglabs/fundingdsl/pkg/hclfront"
	"github.com/fundinglabs/fundingdsl/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoHCL = `
funding "Parser Comparison Demo" {
  description = "Demonstrating both parser implementations"
  currency    = "EUR"
  min_amount  = 2.0
  max_amount  = 500.0

  beneficiary "Alice Developer" {
    email   = "alice@demo.com"
    github  = "alice-dev"
    website = "https://alice.dev"
  }

  beneficiary "Bob Contributor" {
    github = "bob-contrib"
  }

  source "github_sponsors" "alice-dev" {
    type   = "both"
    active = true
  }

  source "patreon" "demo-project" {
    type   = "recurring"
    config = {
      tier_sync = "enabled"
    }
  }

  source "custom" "PayPal Donations" {
    url = "https://paypal.me/alice-dev"
  }

  tier "Coffee Supporter" {
    amount   = 5.0
    benefits = ["Thank you message", "Project updates"]
  }

  goal "Infrastructure Costs" {
    target  = 200.0
    current = 125.0
  }

  goal "Documentation Rewrite" {
    target   = 1000.0
    current  = "300.0 EUR"
    deadline = "2024-09-01"
  }
}
`

func TestParseHCLDocument(t *testing.T) {
	cfg, err := hclfront.Parse(demoHCL)
	require.NoError(t, err)

	assert.Equal(t, "Parser Comparison Demo", cfg.ProjectName)
	assert.Equal(t, core.EUR, cfg.PreferredCurrency)
	assert.Len(t, cfg.Beneficiaries, 2)
	assert.Len(t, cfg.Sources, 3)
	assert.Len(t, cfg.Tiers, 1)
	assert.Len(t, cfg.Goals, 2)

	require.NotNil(t, cfg.MinAmount)
	assert.Equal(t, core.EUR, cfg.MinAmount.Currency, "bare numbers inherit the preferred currency")

	infra := cfg.Goals[0]
	assert.InDelta(t, 62.5, infra.Progress(), 0.001)

	docs := cfg.Goals[1]
	assert.Equal(t, core.EUR, docs.Current.Currency, "string amounts carry their code")
	require.NotNil(t, docs.Deadline)
	assert.Equal(t, "2024-09-01", docs.Deadline.Format(core.DeadlineLayout))
}

func TestParseHCLSourceDefaults(t *testing.T) {
	cfg, err := hclfront.Parse(`
funding "Demo" {
  source "liberapay" "alice" {}
}
`)
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, core.Both, cfg.Sources[0].Type)
	assert.True(t, cfg.Sources[0].IsActive)
}

func TestParseHCLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax error", `funding "Demo" {`},
		{"missing funding block", `description = "x"`},
		{"unknown attribute", `funding "Demo" { colour = "red" }`},
		{"missing tier amount", `funding "Demo" { tier "T" {} }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hclfront.Parse(tt.input)
			require.Error(t, err)
		})
	}
}

func TestParseHCLBuildErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "unknown currency",
			input:     `funding "Demo" { currency = "XYZ" }`,
			wantField: "currency",
		},
		{
			name: "unknown platform",
			input: `funding "Demo" {
  source "kickstarter" "a" {}
}`,
			wantField: "platform",
		},
		{
			name: "bad deadline",
			input: `funding "Demo" {
  goal "G" {
    target   = 10
    deadline = "soon"
  }
}`,
			wantField: "deadline",
		},
		{
			name: "negative amount",
			input: `funding "Demo" {
  tier "T" {
    amount = -5
  }
}`,
			wantField: "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hclfront.Parse(tt.input)
			require.Error(t, err)
			var buildErr *parser.BuildError
			require.ErrorAs(t, err, &buildErr)
			assert.Equal(t, tt.wantField, buildErr.Field)
		})
	}
}

func TestFrontendsAgreeOnDemoDocument(t *testing.T) {
	data, err := os.ReadFile("../parser/testdata/demo.funding")
	require.NoError(t, err)

	native, err := parser.Parse(string(data))
	require.NoError(t, err)

	hcl, err := hclfront.Parse(hclfront.Write(native))
	require.NoError(t, err)

	assert.True(t, core.Equal(native, hcl), "diff: %v", core.Diff(native, hcl))
}

func TestWriteRoundTrip(t *testing.T) {
	cfg, err := hclfront.Parse(demoHCL)
	require.NoError(t, err)

	reparsed, err := hclfront.Parse(hclfront.Write(cfg))
	require.NoError(t, err)

	assert.True(t, core.Equal(cfg, reparsed), "diff: %v", core.Diff(cfg, reparsed))
}

func TestFrontendRegistry(t *testing.T) {
	names := core.FrontendNames()
	assert.Contains(t, names, "native")
	assert.Contains(t, names, "hcl")

	f, err := core.GetFrontend("hcl")
	require.NoError(t, err)
	assert.Equal(t, "hcl", f.Name())

	_, err = core.GetFrontend("antlr")
	require.Error(t, err)
}
