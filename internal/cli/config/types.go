// Package config loads CLI configuration from files, environment
// variables, and flags.
package config

// Defaults applied before any other configuration source.
const (
	DefaultFrontend = "native"
	DefaultOutput   = "auto"
	DefaultExport   = "github_yml"
)

// Config is the resolved CLI configuration.
// Precedence (highest to lowest): flags > env vars > config file >
// defaults.
type Config struct {
	// Frontend selects the parser front-end: "native" or "hcl".
	Frontend string `koanf:"frontend"`
	// OutputFormat controls command rendering: auto, text, or json.
	OutputFormat string `koanf:"output"`
	// ExportFormat is the default format for the export command.
	ExportFormat string `koanf:"export_format"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
