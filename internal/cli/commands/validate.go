package commands

import (
	"fmt"

	"github.com/fundinglabs/fundingdsl/internal/cli/output"
	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a funding document",
		Long: `Parse a funding document and run semantic validation. All findings
are reported, not just the first; the command fails when any finding
exists so it can gate CI pipelines.`,
		Example: `  fundingdsl validate funding.dsl
  fundingdsl validate funding.dsl --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

type validateResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func runValidate(cmd *cobra.Command, path string) error {
	cfg, _, err := parseFile(cmd, path)
	if err != nil {
		return err
	}

	r := GetRenderer(cmd.Context())
	findings := core.Validate(cfg)

	if r.EffectiveMode() == output.ModeJSON {
		result := validateResult{Valid: len(findings) == 0, Errors: findings}
		if result.Errors == nil {
			result.Errors = []string{}
		}
		if err := r.JSON(result); err != nil {
			return err
		}
	} else if len(findings) == 0 {
		r.Success(fmt.Sprintf("%s is valid", path))
	} else {
		r.Error(fmt.Sprintf("%s has %d validation issue(s):", path, len(findings)))
		for _, finding := range findings {
			r.Printf("  - %s\n", finding)
		}
	}

	if len(findings) > 0 {
		return fmt.Errorf("validation failed with %d issue(s)", len(findings))
	}
	return nil
}
