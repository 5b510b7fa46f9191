package export

import (
	"fmt"
	"strings"

	"github.com/fundinglabs/fundingdsl/pkg/core"
)

// platformLabels maps each platform to its display name and sponsor
// page URL pattern (%s is the username).
var platformLabels = map[core.Platform]struct {
	label string
	url   string
}{
	core.PlatformGitHubSponsors:  {"GitHub Sponsors", "https://github.com/sponsors/%s"},
	core.PlatformPatreon:         {"Patreon", "https://patreon.com/%s"},
	core.PlatformKoFi:            {"Ko-fi", "https://ko-fi.com/%s"},
	core.PlatformOpenCollective:  {"Open Collective", "https://opencollective.com/%s"},
	core.PlatformLiberapay:       {"Liberapay", "https://liberapay.com/%s"},
	core.PlatformTidelift:        {"Tidelift", "https://tidelift.com/subscription/pkg/%s"},
	core.PlatformIssueHunt:       {"IssueHunt", "https://issuehunt.io/r/%s"},
	core.PlatformCommunityBridge: {"LFX Mentorship", "https://mentorship.lfx.linuxfoundation.org/project/%s"},
	core.PlatformPolar:           {"Polar", "https://polar.sh/%s"},
	core.PlatformThanksDev:       {"thanks.dev", "https://thanks.dev/%s"},
	core.PlatformBuyMeACoffee:    {"Buy Me a Coffee", "https://buymeacoffee.com/%s"},
}

// Markdown renders the configuration as a funding information page.
func (e *Exporter) Markdown() string {
	cfg := e.cfg
	var md []string

	md = append(md, fmt.Sprintf("# %s - Funding Information", cfg.ProjectName), "")
	if cfg.Description != "" {
		md = append(md, cfg.Description, "")
	}

	if len(cfg.Beneficiaries) > 0 {
		md = append(md, "## Beneficiaries", "")
		for _, b := range cfg.Beneficiaries {
			md = append(md, fmt.Sprintf("### %s", b.Name))
			if b.Description != "" {
				md = append(md, b.Description)
			}
			if b.GitHubUsername != "" {
				md = append(md, fmt.Sprintf("- **GitHub**: [@%s](https://github.com/%s)", b.GitHubUsername, b.GitHubUsername))
			}
			if b.Website != "" {
				md = append(md, fmt.Sprintf("- **Website**: [%s](%s)", b.Website, b.Website))
			}
			if b.Email != "" {
				md = append(md, fmt.Sprintf("- **Email**: %s", b.Email))
			}
			md = append(md, "")
		}
	}

	if active := cfg.ActiveSources(); len(active) > 0 {
		md = append(md, "## How to Support", "")
		for _, s := range active {
			md = append(md, fmt.Sprintf("### %s", platformTitle(s.Platform)))
			if entry, ok := platformLabels[s.Platform]; ok {
				md = append(md, fmt.Sprintf("Support via [%s](%s)", entry.label, fmt.Sprintf(entry.url, s.Username)))
			} else if s.CustomURL != "" {
				md = append(md, fmt.Sprintf("Support via [custom platform](%s)", s.CustomURL))
			}
			md = append(md, fmt.Sprintf("- **Type**: %s", typeTitle(s.Type)), "")
		}
	}

	if active := cfg.ActiveTiers(); len(active) > 0 {
		md = append(md, "## Sponsorship Tiers", "")
		for _, t := range active {
			md = append(md, fmt.Sprintf("### %s - %s", t.Name, t.Amount))
			if t.Description != "" {
				md = append(md, t.Description)
			}
			if len(t.Benefits) > 0 {
				md = append(md, "", "**Benefits:**")
				for _, benefit := range t.Benefits {
					md = append(md, fmt.Sprintf("- %s", benefit))
				}
			}
			if t.MaxSponsors > 0 {
				md = append(md, "", fmt.Sprintf("*Limited to %d sponsors*", t.MaxSponsors))
			}
			md = append(md, "")
		}
	}

	if len(cfg.Goals) > 0 {
		md = append(md, "## Funding Goals", "")
		for _, g := range cfg.Goals {
			md = append(md, fmt.Sprintf("### %s", g.Name))
			if g.Description != "" {
				md = append(md, g.Description)
			}
			md = append(md, "", fmt.Sprintf("**Progress**: %.1f%% `%s`", g.Progress(), progressBar(g.Progress())))
			md = append(md, fmt.Sprintf("**Target**: %s | **Current**: %s", g.Target, g.Current))
			if g.Deadline != nil {
				md = append(md, fmt.Sprintf("**Deadline**: %s", g.Deadline.Format(core.DeadlineLayout)))
			}
			md = append(md, "")
		}
	}

	return strings.TrimRight(strings.Join(md, "\n"), "\n") + "\n"
}

// progressBar renders a ten-segment bar, one filled segment per
// complete 10%.
func progressBar(pct float64) string {
	filled := int(pct / 10)
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// platformTitle turns "github_sponsors" into "Github Sponsors".
func platformTitle(p core.Platform) string {
	words := strings.Split(string(p), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// typeTitle turns "one_time" into "One Time".
func typeTitle(t core.FundingType) string {
	return platformTitle(core.Platform(t))
}
