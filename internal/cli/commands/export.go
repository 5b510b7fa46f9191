package commands

import (
	"fmt"
	"os"

	"github.com/fundinglabs/fundingdsl/pkg/export"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var (
		formatFlag string
		outFile    string
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a funding document to a publishable format",
		Long: `Parse a funding document and export it as GitHub FUNDING.yml, JSON,
Markdown, or CSV. The default format comes from the configuration
(export_format key, FUNDINGDSL_EXPORT_FORMAT).`,
		Example: `  # Generate .github/FUNDING.yml content
  fundingdsl export funding.dsl --format github_yml

  # Write Markdown documentation to a file
  fundingdsl export funding.dsl --format markdown --out FUNDING.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], formatFlag, outFile)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "F", "", "Export format (github_yml|json|markdown|csv)")
	cmd.Flags().StringVar(&outFile, "out", "", "Write output to a file instead of stdout")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(export.Formats()))
		for _, f := range export.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runExport(cmd *cobra.Command, path, formatFlag, outFile string) error {
	cfg, _, err := parseFile(cmd, path)
	if err != nil {
		return err
	}

	name := formatFlag
	if name == "" {
		name = GetConfig(cmd.Context()).ExportFormat
	}
	exportFormat, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	content, err := export.New(cfg).Export(exportFormat)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r := GetRenderer(cmd.Context())
	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outFile, err)
		}
		r.Success(fmt.Sprintf("exported %s to %s", exportFormat, outFile))
		return nil
	}

	r.Printf("%s", content)
	return nil
}
