package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the root entity of a funding setup. It owns all
// nested entities; slices preserve declaration order from the source
// document.
type Configuration struct {
	ProjectName       string
	Description       string
	PreferredCurrency Currency
	MinAmount         *CurrencyAmount
	MaxAmount         *CurrencyAmount
	Beneficiaries     []*Beneficiary
	Sources           []*FundingSource
	Tiers             []*Tier
	Goals             []*Goal
}

// Beneficiary is an individual or organization receiving funding.
// Name is the natural key within a Configuration.
type Beneficiary struct {
	Name           string
	Email          string
	GitHubUsername string
	Website        string
	Description    string
}

// FundingSource is a configured funding platform.
type FundingSource struct {
	Platform Platform
	Username string
	Type     FundingType
	IsActive bool
	// CustomURL is required when Platform is PlatformCustom.
	CustomURL string
	// Config holds free-form platform-specific settings.
	Config map[string]string
}

// Tier is a priced sponsorship level.
type Tier struct {
	Name        string
	Amount      CurrencyAmount
	Description string
	// MaxSponsors limits how many sponsors may hold the tier; 0 means
	// unlimited.
	MaxSponsors int
	Benefits    []string
	IsActive    bool
}

// Goal is a funding target with current progress. Over-funding is
// allowed: Current may exceed Target.
type Goal struct {
	Name        string
	Target      CurrencyAmount
	Current     CurrencyAmount
	Deadline    *time.Time
	Description string
}

// DeadlineLayout is the date format accepted for goal deadlines.
const DeadlineLayout = "2006-01-02"

// Progress returns the goal's completion percentage, capped at 100.
// A zero target yields 0.
func (g *Goal) Progress() float64 {
	if g.Target.IsZero() {
		return 0
	}
	pct, _ := g.Current.Value.Div(g.Target.Value).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}

// ActiveSources returns the sources marked active, in declaration order.
func (c *Configuration) ActiveSources() []*FundingSource {
	var active []*FundingSource
	for _, s := range c.Sources {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active
}

// ActiveTiers returns the tiers marked active, in declaration order.
func (c *Configuration) ActiveTiers() []*Tier {
	var active []*Tier
	for _, t := range c.Tiers {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active
}
