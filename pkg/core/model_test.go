package core_test

import (
	"testing"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		want    float64
	}{
		{"partial", "200.0", "125.0", 62.5},
		{"complete", "100", "100", 100},
		{"over-funded capped", "100", "250", 100},
		{"nothing raised", "100", "0", 0},
		{"zero target", "0", "50", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &core.Goal{
				Name:    "g",
				Target:  amount(tt.target, core.EUR),
				Current: amount(tt.current, core.EUR),
			}
			assert.InDelta(t, tt.want, g.Progress(), 0.001)
		})
	}
}

func TestActiveSources(t *testing.T) {
	cfg := &core.Configuration{
		Sources: []*core.FundingSource{
			{Platform: core.PlatformGitHubSponsors, Username: "a", IsActive: true},
			{Platform: core.PlatformPatreon, Username: "b", IsActive: false},
			{Platform: core.PlatformKoFi, Username: "c", IsActive: true},
		},
	}

	active := cfg.ActiveSources()
	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Username)
	assert.Equal(t, "c", active[1].Username)
}

func TestActiveTiers(t *testing.T) {
	cfg := &core.Configuration{
		Tiers: []*core.Tier{
			{Name: "on", Amount: amount("5", core.USD), IsActive: true},
			{Name: "off", Amount: amount("10", core.USD), IsActive: false},
		},
	}

	active := cfg.ActiveTiers()
	assert.Len(t, active, 1)
	assert.Equal(t, "on", active[0].Name)
}

func TestParseEnums(t *testing.T) {
	c, err := core.ParseCurrency("EUR")
	assert.NoError(t, err)
	assert.Equal(t, core.EUR, c)
	_, err = core.ParseCurrency("eur")
	assert.Error(t, err, "currency codes are case-sensitive")

	p, err := core.ParsePlatform("github_sponsors")
	assert.NoError(t, err)
	assert.Equal(t, core.PlatformGitHubSponsors, p)
	_, err = core.ParsePlatform("kickstarter")
	assert.Error(t, err)

	ft, err := core.ParseFundingType("one_time")
	assert.NoError(t, err)
	assert.Equal(t, core.OneTime, ft)
	_, err = core.ParseFundingType("monthly")
	assert.Error(t, err)
}

func TestPlatformYAMLKey(t *testing.T) {
	assert.Equal(t, "github", core.PlatformGitHubSponsors.YAMLKey())
	assert.Equal(t, "patreon", core.PlatformPatreon.YAMLKey())
	assert.Equal(t, "custom", core.PlatformCustom.YAMLKey())
}
