package parser_test

import (
	"os"
	"testing"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/fundinglabs/fundingdsl/pkg/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDemo(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/demo.funding")
	require.NoError(t, err)
	return string(data)
}

func TestParseDemoDocument(t *testing.T) {
	cfg, err := parser.Parse(loadDemo(t))
	require.NoError(t, err)

	assert.Equal(t, "Parser Comparison Demo", cfg.ProjectName)
	assert.Equal(t, core.EUR, cfg.PreferredCurrency)
	assert.Len(t, cfg.Beneficiaries, 2)
	assert.Len(t, cfg.Sources, 4)
	assert.Len(t, cfg.Tiers, 3)
	assert.Len(t, cfg.Goals, 3)

	require.NotNil(t, cfg.MinAmount)
	require.NotNil(t, cfg.MaxAmount)
	assert.True(t, cfg.MinAmount.Equal(mustAmount(t, "2.0", core.EUR)), "min_amount")
	assert.True(t, cfg.MaxAmount.Equal(mustAmount(t, "500.0", core.EUR)), "max_amount")
}

func mustAmount(t *testing.T, s string, c core.Currency) core.CurrencyAmount {
	t.Helper()
	a, err := core.ParseAmount(s, c)
	require.NoError(t, err)
	return a
}

func TestParseDemoBeneficiaries(t *testing.T) {
	cfg, err := parser.Parse(loadDemo(t))
	require.NoError(t, err)
	require.Len(t, cfg.Beneficiaries, 2)

	alice := cfg.Beneficiaries[0]
	assert.Equal(t, "Alice Developer", alice.Name)
	assert.Equal(t, "alice@demo.com", alice.Email)
	assert.Equal(t, "alice-dev", alice.GitHubUsername)
	assert.Equal(t, "https://alice.dev", alice.Website)

	bob := cfg.Beneficiaries[1]
	assert.Equal(t, "Bob Contributor", bob.Name)
	assert.Empty(t, bob.Email)
	assert.Equal(t, "bob-contrib", bob.GitHubUsername)
}

func TestParseDemoSources(t *testing.T) {
	cfg, err := parser.Parse(loadDemo(t))
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 4)

	github := cfg.Sources[0]
	assert.Equal(t, core.PlatformGitHubSponsors, github.Platform)
	assert.Equal(t, "alice-dev", github.Username)
	assert.Equal(t, core.Both, github.Type)
	assert.True(t, github.IsActive)

	patreon := cfg.Sources[1]
	assert.Equal(t, core.PlatformPatreon, patreon.Platform)
	assert.Equal(t, core.Recurring, patreon.Type)
	assert.Equal(t, map[string]string{
		"tier_sync":   "enabled",
		"webhook_url": "https://api.demo.com/webhook",
		"auto_thank":  "true",
	}, patreon.Config)

	custom := cfg.Sources[3]
	assert.Equal(t, core.PlatformCustom, custom.Platform)
	assert.Equal(t, "PayPal Donations", custom.Username)
	assert.Equal(t, "https://paypal.me/alice-dev", custom.CustomURL)
}

func TestParseDemoTiers(t *testing.T) {
	cfg, err := parser.Parse(loadDemo(t))
	require.NoError(t, err)
	require.Len(t, cfg.Tiers, 3)

	coffee := cfg.Tiers[0]
	assert.Equal(t, "Coffee Supporter", coffee.Name)
	assert.True(t, coffee.Amount.Equal(mustAmount(t, "5.0", core.EUR)))
	assert.Equal(t, 0, coffee.MaxSponsors, "no limit declared")
	assert.Len(t, coffee.Benefits, 3)
	assert.True(t, coffee.IsActive)

	backer := cfg.Tiers[1]
	assert.Equal(t, 50, backer.MaxSponsors)
	assert.Equal(t, []string{
		"All Coffee tier benefits",
		"Early access to features",
		"Direct communication channel",
		"Priority issue responses",
	}, backer.Benefits)
}

func TestParseDemoGoals(t *testing.T) {
	cfg, err := parser.Parse(loadDemo(t))
	require.NoError(t, err)
	require.Len(t, cfg.Goals, 3)

	infra := cfg.Goals[0]
	assert.Equal(t, "Infrastructure Costs", infra.Name)
	assert.True(t, infra.Target.Equal(mustAmount(t, "200.0", core.EUR)))
	assert.True(t, infra.Current.Equal(mustAmount(t, "125.0", core.EUR)))
	assert.Nil(t, infra.Deadline)
	assert.InDelta(t, 62.5, infra.Progress(), 0.001)

	docs := cfg.Goals[1]
	require.NotNil(t, docs.Deadline)
	assert.Equal(t, "2024-09-01", docs.Deadline.Format(core.DeadlineLayout))

	mobile := cfg.Goals[2]
	assert.True(t, mobile.Current.IsZero())
	assert.Equal(t, float64(0), mobile.Progress())
}

func TestParseDeterminism(t *testing.T) {
	text := loadDemo(t)

	first, err := parser.Parse(text)
	require.NoError(t, err)
	second, err := parser.Parse(text)
	require.NoError(t, err)

	assert.True(t, core.Equal(first, second), "diff: %v", core.Diff(first, second))
}

func TestParseMinimalDocument(t *testing.T) {
	cfg, err := parser.Parse(`funding "Tiny" { }`)
	require.NoError(t, err)
	assert.Equal(t, "Tiny", cfg.ProjectName)
	assert.Equal(t, core.USD, cfg.PreferredCurrency, "currency defaults to USD")
	assert.Empty(t, cfg.Beneficiaries)
	assert.Empty(t, cfg.Sources)
	assert.Empty(t, cfg.Tiers)
	assert.Empty(t, cfg.Goals)
}

func TestParseAmountInheritsPreferredCurrency(t *testing.T) {
	cfg, err := parser.Parse(`funding "Demo" {
		currency GBP
		min_amount 2.0
		tiers {
			tier "Basic" { amount 5 }
		}
	}`)
	require.NoError(t, err)
	require.NotNil(t, cfg.MinAmount)
	assert.Equal(t, core.GBP, cfg.MinAmount.Currency)
	require.Len(t, cfg.Tiers, 1)
	assert.Equal(t, core.GBP, cfg.Tiers[0].Amount.Currency)
	assert.True(t, cfg.Tiers[0].Amount.Value.Equal(decimal.NewFromInt(5)))
}

// ---------- Error Cases ----------

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "duplicate description",
			input:   `funding "Demo" { description "a" description "b" }`,
			wantMsg: "duplicate description field",
		},
		{
			name:    "duplicate currency",
			input:   `funding "Demo" { currency EUR currency USD }`,
			wantMsg: "duplicate currency field",
		},
		{
			name:    "unknown key in funding block",
			input:   `funding "Demo" { colour "red" }`,
			wantMsg: `unknown key "colour" in funding block`,
		},
		{
			name:    "unknown key in beneficiary block",
			input:   `funding "Demo" { beneficiaries { beneficiary "A" { twitter "a" } } }`,
			wantMsg: `unknown key "twitter" in beneficiary block`,
		},
		{
			name:    "unknown platform",
			input:   `funding "Demo" { sources { kickstarter "a" { } } }`,
			wantMsg: `unknown platform "kickstarter"`,
		},
		{
			name:    "missing closing brace",
			input:   `funding "Demo" { description "a"`,
			wantMsg: "unexpected token EOF, expected RBRACE",
		},
		{
			name:    "missing project name",
			input:   `funding { }`,
			wantMsg: "unexpected token LBRACE, expected STRING",
		},
		{
			name:    "trailing garbage",
			input:   `funding "Demo" { } funding "Again" { }`,
			wantMsg: "unexpected token FUNDING, expected EOF",
		},
		{
			name:    "duplicate config key",
			input:   `funding "Demo" { sources { patreon "p" { config { "k" "1" "k" "2" } } } }`,
			wantMsg: `duplicate config key "k"`,
		},
		{
			name:    "duplicate tier amount field",
			input:   `funding "Demo" { tiers { tier "T" { amount 5 amount 6 } } }`,
			wantMsg: "duplicate amount field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, cfg, "no partial configuration on error")
			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Message, tt.wantMsg)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	input := "funding \"Demo\" {\n  colour \"red\"\n}"
	_, err := parser.Parse(input)
	require.Error(t, err)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Pos.Line)
	assert.Equal(t, 3, parseErr.Pos.Column)
}

func TestParseLexError(t *testing.T) {
	_, err := parser.Parse(`funding "Demo" { @ }`)
	require.Error(t, err)

	var lexErr *parser.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Message, "unrecognized character")
	assert.Equal(t, 1, lexErr.Pos.Line)
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := parser.Parse(`funding "Demo`)
	require.Error(t, err)

	var lexErr *parser.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "unterminated string literal", lexErr.Message)
}
