package export

import (
	"strings"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"gopkg.in/yaml.v3"
)

// fundingYMLOrder is the field order GitHub documents for FUNDING.yml.
var fundingYMLOrder = []core.Platform{
	core.PlatformGitHubSponsors,
	core.PlatformPatreon,
	core.PlatformOpenCollective,
	core.PlatformKoFi,
	core.PlatformTidelift,
	core.PlatformPolar,
	core.PlatformBuyMeACoffee,
	core.PlatformThanksDev,
	core.PlatformCommunityBridge,
	core.PlatformLiberapay,
	core.PlatformIssueHunt,
	core.PlatformCustom,
}

// GitHubFundingYML renders the active funding sources as a FUNDING.yml
// document. Platforms with one entry emit a scalar, platforms with
// several emit a flow-style sequence. Custom sources contribute their
// URL, falling back to the username when no URL is set. PayPal has no
// FUNDING.yml field and is skipped.
func (e *Exporter) GitHubFundingYML() (string, error) {
	grouped := make(map[core.Platform][]string)
	for _, s := range e.cfg.ActiveSources() {
		value := s.Username
		if s.Platform == core.PlatformCustom && s.CustomURL != "" {
			value = s.CustomURL
		}
		grouped[s.Platform] = append(grouped[s.Platform], value)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, platform := range fundingYMLOrder {
		values := grouped[platform]
		if len(values) == 0 {
			continue
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Value: platform.YAMLKey()}
		var value *yaml.Node
		if len(values) == 1 {
			value = &yaml.Node{Kind: yaml.ScalarNode, Value: values[0]}
		} else {
			value = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, v := range values {
				value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: v})
			}
		}
		root.Content = append(root.Content, key, value)
	}

	if len(root.Content) == 0 {
		return "", nil
	}

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
