package core

import "fmt"

// Currency is an ISO 4217 currency code supported by the DSL.
type Currency string

// Supported currencies.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

// currencies is the closed set of supported currency codes.
var currencies = map[Currency]bool{
	USD: true,
	EUR: true,
	GBP: true,
	CAD: true,
	AUD: true,
}

// ParseCurrency converts a currency code string to a Currency.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !currencies[c] {
		return "", fmt.Errorf("unknown currency %q", s)
	}
	return c, nil
}

// Platform identifies a funding platform. The value is the platform's
// spelling in the DSL (e.g. "github_sponsors").
type Platform string

// Supported funding platforms.
const (
	PlatformGitHubSponsors  Platform = "github_sponsors"
	PlatformPatreon         Platform = "patreon"
	PlatformOpenCollective  Platform = "open_collective"
	PlatformKoFi            Platform = "ko_fi"
	PlatformBuyMeACoffee    Platform = "buy_me_a_coffee"
	PlatformLiberapay       Platform = "liberapay"
	PlatformPayPal          Platform = "paypal"
	PlatformTidelift        Platform = "tidelift"
	PlatformIssueHunt       Platform = "issuehunt"
	PlatformCommunityBridge Platform = "community_bridge"
	PlatformPolar           Platform = "polar"
	PlatformThanksDev       Platform = "thanks_dev"
	PlatformCustom          Platform = "custom"
)

// platforms is the closed set of supported platforms.
var platforms = map[Platform]bool{
	PlatformGitHubSponsors:  true,
	PlatformPatreon:         true,
	PlatformOpenCollective:  true,
	PlatformKoFi:            true,
	PlatformBuyMeACoffee:    true,
	PlatformLiberapay:       true,
	PlatformPayPal:          true,
	PlatformTidelift:        true,
	PlatformIssueHunt:       true,
	PlatformCommunityBridge: true,
	PlatformPolar:           true,
	PlatformThanksDev:       true,
	PlatformCustom:          true,
}

// ParsePlatform converts a DSL platform name to a Platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !platforms[p] {
		return "", fmt.Errorf("unknown platform %q", s)
	}
	return p, nil
}

// IsPlatform reports whether s names a supported platform.
func IsPlatform(s string) bool {
	return platforms[Platform(s)]
}

// YAMLKey returns the platform's field name in GitHub's funding.yml
// format. GitHub Sponsors is spelled "github" there; every other
// platform keeps its DSL spelling.
func (p Platform) YAMLKey() string {
	if p == PlatformGitHubSponsors {
		return "github"
	}
	return string(p)
}

// FundingType describes the funding arrangement a source accepts.
type FundingType string

// Funding arrangement kinds.
const (
	OneTime   FundingType = "one_time"
	Recurring FundingType = "recurring"
	Both      FundingType = "both"
)

// fundingTypes is the closed set of funding arrangement kinds.
var fundingTypes = map[FundingType]bool{
	OneTime:   true,
	Recurring: true,
	Both:      true,
}

// ParseFundingType converts a DSL type name to a FundingType.
func ParseFundingType(s string) (FundingType, error) {
	t := FundingType(s)
	if !fundingTypes[t] {
		return "", fmt.Errorf("unknown funding type %q", s)
	}
	return t, nil
}
