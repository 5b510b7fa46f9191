package format_test

import (
	"os"
	"strings"
	"testing"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/fundinglabs/fundingdsl/pkg/format"
	"github.com/fundinglabs/fundingdsl/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	data, err := os.ReadFile("../parser/testdata/demo.funding")
	require.NoError(t, err)

	original, err := parser.Parse(string(data))
	require.NoError(t, err)

	rendered := format.Format(original)
	reparsed, err := parser.Parse(rendered)
	require.NoError(t, err, "canonical output must parse:\n%s", rendered)

	assert.True(t, core.Equal(original, reparsed), "diff: %v", core.Diff(original, reparsed))
}

func TestFormatIsIdempotent(t *testing.T) {
	data, err := os.ReadFile("../parser/testdata/demo.funding")
	require.NoError(t, err)

	cfg, err := parser.Parse(string(data))
	require.NoError(t, err)

	once := format.Format(cfg)
	reparsed, err := parser.Parse(once)
	require.NoError(t, err)
	twice := format.Format(reparsed)

	assert.Equal(t, once, twice)
}

func TestFormatMinimal(t *testing.T) {
	cfg, err := parser.Parse(`funding "Tiny" { }`)
	require.NoError(t, err)

	rendered := format.Format(cfg)
	assert.Equal(t, "funding \"Tiny\" {\n    currency USD\n}\n", rendered)
}

func TestFormatEscapesStrings(t *testing.T) {
	cfg := &core.Configuration{
		ProjectName:       `Quote "Me"`,
		PreferredCurrency: core.USD,
	}

	rendered := format.Format(cfg)
	assert.Contains(t, rendered, `funding "Quote \"Me\"" {`)

	reparsed, err := parser.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, `Quote "Me"`, reparsed.ProjectName)
}

func TestFormatForeignCurrencyAmounts(t *testing.T) {
	cfg, err := parser.Parse(`funding "Mixed" {
		currency USD
		min_amount 1.0
		max_amount 100.0 GBP
		tiers { tier "T" { amount 5.0 } }
	}`)
	require.NoError(t, err)

	rendered := format.Format(cfg)
	lines := strings.Split(rendered, "\n")

	assert.Contains(t, lines, "    min_amount 1")
	assert.Contains(t, lines, "    max_amount 100 GBP")
	assert.Contains(t, rendered, "amount 5 USD")
}
