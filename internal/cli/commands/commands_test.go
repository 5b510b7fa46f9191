package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fundinglabs/fundingdsl/internal/cli/config"
	"github.com/fundinglabs/fundingdsl/internal/cli/output"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `funding "Test Project" {
    description "A test project"
    currency EUR
    min_amount 2.0
    max_amount 500.0

    beneficiaries {
        beneficiary "Alice" {
            github "alice"
        }
    }

    sources {
        source github_sponsors "alice" {
            type both
        }
        source ko_fi "alice" {
            active false
        }
    }

    tiers {
        tier "Supporter" {
            amount 5.0
            benefits ["Thanks"]
        }
    }

    goals {
        goal "Server Costs" {
            target 200.0
            current 125.0
        }
    }
}
`

// writeSample writes the sample document to a temp file and returns its path.
func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "funding.dsl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs a command with a context carrying the given config and a
// renderer wired to in-memory buffers.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	ctx := context.WithValue(context.Background(), ConfigKey{}, cfg)
	mode := output.Mode(cfg.OutputFormat)
	ctx = context.WithValue(ctx, RendererKey{}, output.NewRenderer(&stdout, &stderr, mode))

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SetContext(ctx)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func textConfig() *config.Config {
	return &config.Config{
		Frontend:     config.DefaultFrontend,
		OutputFormat: "text",
		ExportFormat: config.DefaultExport,
	}
}

func jsonConfig() *config.Config {
	cfg := textConfig()
	cfg.OutputFormat = "json"
	return cfg
}

func TestParseCommand(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewParseCommand(), textConfig(), path)
	require.NoError(t, err)

	assert.Contains(t, stdout, `Funding configuration "Test Project"`)
	assert.Contains(t, stdout, "Currency:      EUR")
	assert.Contains(t, stdout, "Sources:       2 (1 active)")
	assert.Contains(t, stdout, "62.5% of 200 EUR")
	assert.Contains(t, stdout, "Parsed successfully")
}

func TestParseCommandJSON(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewParseCommand(), jsonConfig(), path)
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, "Test Project", summary["project"])
	assert.Equal(t, "EUR", summary["currency"])
	assert.Equal(t, float64(1), summary["beneficiaries"])
	assert.Equal(t, float64(2), summary["sources"])
	assert.Equal(t, float64(1), summary["active_sources"])
	assert.Equal(t, "2 EUR", summary["min_amount"])
}

func TestParseCommandSyntaxError(t *testing.T) {
	path := writeSample(t, `funding "Broken" {`)

	_, _, err := execute(t, NewParseCommand(), textConfig(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected token EOF")
}

func TestParseCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, NewParseCommand(), textConfig(), filepath.Join(t.TempDir(), "nope.dsl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestParseCommandUnknownFrontend(t *testing.T) {
	path := writeSample(t, sampleDocument)
	cfg := textConfig()
	cfg.Frontend = "antlr"

	_, _, err := execute(t, NewParseCommand(), cfg, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "antlr")
}

func TestValidateCommandValid(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewValidateCommand(), textConfig(), path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")
}

func TestValidateCommandFindings(t *testing.T) {
	doc := `funding "Dup" {
    sources {
        source custom "PayPal" {
        }
    }
    tiers {
        tier "A" { amount 5.0 }
        tier "A" { amount 5.0 }
    }
}
`
	path := writeSample(t, doc)

	_, stderr, err := execute(t, NewValidateCommand(), textConfig(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, stderr, "validation issue")
}

func TestValidateCommandFindingsJSON(t *testing.T) {
	doc := `funding "Dup" {
    sources {
        source custom "PayPal" {
        }
    }
}
`
	path := writeSample(t, doc)

	stdout, _, err := execute(t, NewValidateCommand(), jsonConfig(), path)
	require.Error(t, err)

	var result struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "custom")
}

func TestFmtCommandPrint(t *testing.T) {
	path := writeSample(t, `funding "Tiny" {}`)

	stdout, _, err := execute(t, NewFmtCommand(), textConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, "funding \"Tiny\" {\n    currency USD\n}\n", stdout)
}

func TestFmtCommandWrite(t *testing.T) {
	path := writeSample(t, `funding "Tiny" {}`)

	_, _, err := execute(t, NewFmtCommand(), textConfig(), "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "funding \"Tiny\" {\n    currency USD\n}\n", string(data))

	// A second run is a no-op.
	_, _, err = execute(t, NewFmtCommand(), textConfig(), "-w", path)
	require.NoError(t, err)
}

func TestFmtCommandCheck(t *testing.T) {
	path := writeSample(t, `funding "Tiny" {}`)

	_, _, err := execute(t, NewFmtCommand(), textConfig(), "--check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not canonically formatted")

	canonical := writeSample(t, "funding \"Tiny\" {\n    currency USD\n}\n")
	stdout, _, err := execute(t, NewFmtCommand(), textConfig(), "--check", canonical)
	require.NoError(t, err)
	assert.Contains(t, stdout, "canonically formatted")
}

func TestExportCommandGitHub(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewExportCommand(), textConfig(), "--format", "github_yml", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "github: alice")
	assert.NotContains(t, stdout, "ko_fi", "inactive sources are not exported")
}

func TestExportCommandDefaultFormat(t *testing.T) {
	path := writeSample(t, sampleDocument)

	// Default export format comes from the configuration.
	stdout, _, err := execute(t, NewExportCommand(), textConfig(), path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "github: alice")
}

func TestExportCommandToFile(t *testing.T) {
	path := writeSample(t, sampleDocument)
	outFile := filepath.Join(t.TempDir(), "FUNDING.md")

	stdout, _, err := execute(t, NewExportCommand(), textConfig(), "--format", "markdown", "--out", outFile, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "exported markdown")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Test Project - Funding Information")
}

func TestExportCommandUnknownFormat(t *testing.T) {
	path := writeSample(t, sampleDocument)

	_, _, err := execute(t, NewExportCommand(), textConfig(), "--format", "toml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}

func TestStatsCommand(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewStatsCommand(), textConfig(), path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Beneficiaries")
	assert.Contains(t, stdout, "Total goal target")
	assert.Contains(t, stdout, "200 EUR")
}

func TestStatsCommandJSON(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewStatsCommand(), jsonConfig(), path)
	require.NoError(t, err)

	var stats struct {
		Project       string   `json:"project"`
		Beneficiaries int      `json:"beneficiaries"`
		Sources       int      `json:"sources"`
		ActiveSources int      `json:"active_sources"`
		Platforms     []string `json:"platforms"`
		Goals         int      `json:"goals"`
		GoalsReached  int      `json:"goals_reached"`
		TotalTarget   string   `json:"total_target"`
		TotalCurrent  string   `json:"total_current"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &stats))
	assert.Equal(t, "Test Project", stats.Project)
	assert.Equal(t, 1, stats.Beneficiaries)
	assert.Equal(t, 2, stats.Sources)
	assert.Equal(t, 1, stats.ActiveSources)
	assert.Equal(t, []string{"github_sponsors", "ko_fi"}, stats.Platforms)
	assert.Equal(t, 1, stats.Goals)
	assert.Equal(t, 0, stats.GoalsReached)
	assert.Equal(t, "200 EUR", stats.TotalTarget)
	assert.Equal(t, "125 EUR", stats.TotalCurrent)
}

func TestCompareCommand(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewCompareCommand(), textConfig(), path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "native")
	assert.Contains(t, stdout, "hcl")
	assert.Contains(t, stdout, "structurally equal")
}

func TestCompareCommandJSON(t *testing.T) {
	path := writeSample(t, sampleDocument)

	stdout, _, err := execute(t, NewCompareCommand(), jsonConfig(), path)
	require.NoError(t, err)

	var result struct {
		Project     string   `json:"project"`
		Equivalent  bool     `json:"equivalent"`
		Differences []string `json:"differences"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "Test Project", result.Project)
	assert.True(t, result.Equivalent)
	assert.Empty(t, result.Differences)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, NewVersionCommand("1.2.3", "2026-01-01", "abc1234"), textConfig())
	require.NoError(t, err)
	assert.Contains(t, stdout, "fundingdsl 1.2.3")
}

func TestCommandMetadata(t *testing.T) {
	cmds := []*cobra.Command{
		NewParseCommand(),
		NewValidateCommand(),
		NewFmtCommand(),
		NewExportCommand(),
		NewStatsCommand(),
		NewCompareCommand(),
	}
	for _, cmd := range cmds {
		assert.NotEmpty(t, cmd.Short, "Short should not be empty for %s", cmd.Use)
		assert.NotEmpty(t, cmd.Long, "Long should not be empty for %s", cmd.Use)
	}

	assert.NotNil(t, NewFmtCommand().Flags().Lookup("write"))
	assert.NotNil(t, NewFmtCommand().Flags().Lookup("check"))
	assert.NotNil(t, NewExportCommand().Flags().Lookup("format"))
	assert.NotNil(t, NewExportCommand().Flags().Lookup("out"))
}
