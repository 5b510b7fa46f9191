// Package commands implements the fundingdsl subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fundinglabs/fundingdsl/internal/cli/config"
	"github.com/fundinglabs/fundingdsl/internal/cli/output"
	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/spf13/cobra"

	// Register the built-in parser front-ends.
	_ "github.com/fundinglabs/fundingdsl/pkg/hclfront"
	_ "github.com/fundinglabs/fundingdsl/pkg/parser"
)

// ConfigKey stores the loaded config in the command context.
type ConfigKey struct{}

// RendererKey stores the output renderer in the command context.
type RendererKey struct{}

// LoggerKey stores the logger in the command context.
type LoggerKey struct{}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Frontend:     config.DefaultFrontend,
		OutputFormat: config.DefaultOutput,
		ExportFormat: config.DefaultExport,
	}
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(RendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.Default()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// parseFile reads a document and parses it with the configured
// front-end. It returns the configuration and the raw document text.
func parseFile(cmd *cobra.Command, path string) (*core.Configuration, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := GetConfig(cmd.Context())
	frontend, err := core.GetFrontend(cfg.Frontend)
	if err != nil {
		return nil, "", err
	}

	GetLogger(cmd.Context()).Debug("parsing document", "path", path, "frontend", frontend.Name())

	parsed, err := frontend.Parse(string(data))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return parsed, string(data), nil
}
