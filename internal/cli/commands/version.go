package commands

import (
	"runtime"

	"github.com/fundinglabs/fundingdsl/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := GetRenderer(cmd.Context())
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(map[string]string{
					"version":    version,
					"build_date": buildDate,
					"git_commit": gitCommit,
					"go_version": runtime.Version(),
				})
			}
			r.Printf("fundingdsl %s\n", version)
			r.Muted("build date: " + buildDate)
			r.Muted("git commit: " + gitCommit)
			r.Muted("go version: " + runtime.Version())
			return nil
		},
	}
}
