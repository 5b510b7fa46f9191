package commands

import (
	"fmt"
	"os"

	"github.com/fundinglabs/fundingdsl/pkg/format"
	"github.com/spf13/cobra"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	var (
		write bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Format a funding document canonically",
		Long: `Rewrite a funding document in canonical form. The output parses to a
configuration structurally equal to the input. Works with any
front-end for input; the output is always native DSL syntax.`,
		Example: `  # Print the canonical form
  fundingdsl fmt funding.dsl

  # Rewrite the file in place
  fundingdsl fmt -w funding.dsl

  # Fail when the file is not canonical (CI)
  fundingdsl fmt --check funding.dsl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args[0], write, check)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result back to the file")
	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero when the file is not canonical")
	return cmd
}

func runFmt(cmd *cobra.Command, path string, write, check bool) error {
	cfg, original, err := parseFile(cmd, path)
	if err != nil {
		return err
	}

	canonical := format.Format(cfg)
	r := GetRenderer(cmd.Context())

	switch {
	case check:
		if canonical != original {
			return fmt.Errorf("%s is not canonically formatted", path)
		}
		r.Success(fmt.Sprintf("%s is canonically formatted", path))
	case write:
		if canonical == original {
			return nil
		}
		if err := os.WriteFile(path, []byte(canonical), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		r.Success(fmt.Sprintf("reformatted %s", path))
	default:
		r.Printf("%s", canonical)
	}
	return nil
}
