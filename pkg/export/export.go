// Package export renders a funding configuration into publishable
// formats: GitHub's FUNDING.yml, JSON for API consumption, Markdown
// documentation, and CSV for spreadsheet analysis.
package export

import (
	"fmt"
	"time"

	"github.com/fundinglabs/fundingdsl/pkg/core"
)

// Format identifies an export output format.
type Format string

// Supported export formats.
const (
	FormatGitHubYML Format = "github_yml"
	FormatJSON      Format = "json"
	FormatMarkdown  Format = "markdown"
	FormatCSV       Format = "csv"
)

// Formats returns the supported format names in display order.
func Formats() []Format {
	return []Format{FormatGitHubYML, FormatJSON, FormatMarkdown, FormatCSV}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatGitHubYML, FormatJSON, FormatMarkdown, FormatCSV:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Exporter renders one configuration into the supported formats.
type Exporter struct {
	cfg *core.Configuration
	now func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the timestamp source used in export metadata.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// New creates an Exporter for the given configuration.
func New(cfg *core.Configuration, opts ...Option) *Exporter {
	e := &Exporter{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the configuration in the given format.
func (e *Exporter) Export(format Format) (string, error) {
	switch format {
	case FormatGitHubYML:
		return e.GitHubFundingYML()
	case FormatJSON:
		return e.JSON()
	case FormatMarkdown:
		return e.Markdown(), nil
	case FormatCSV:
		return e.CSV()
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}
