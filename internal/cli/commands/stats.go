package commands

import (
	"sort"

	"github.com/fundinglabs/fundingdsl/internal/cli/output"
	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Show aggregate statistics for a funding document",
		Long: `Parse a funding document and compute aggregate statistics by walking
the configuration with a visitor: entity counts, active sources,
distinct platforms, and goal progress.`,
		Example: `  fundingdsl stats funding.dsl
  fundingdsl stats funding.dsl --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0])
		},
	}
}

// statisticsVisitor accumulates aggregates during traversal.
type statisticsVisitor struct {
	Project        string   `json:"project"`
	Beneficiaries  int      `json:"beneficiaries"`
	Sources        int      `json:"sources"`
	ActiveSources  int      `json:"active_sources"`
	Platforms      []string `json:"platforms"`
	Tiers          int      `json:"tiers"`
	ActiveTiers    int      `json:"active_tiers"`
	Goals          int      `json:"goals"`
	GoalsReached   int      `json:"goals_reached"`
	TotalTarget  string `json:"total_target,omitempty"`
	TotalCurrent string `json:"total_current,omitempty"`

	platformSet map[core.Platform]bool
	totalTarget *core.CurrencyAmount
	totalRaised *core.CurrencyAmount
	mixed       bool
}

func newStatisticsVisitor() *statisticsVisitor {
	return &statisticsVisitor{platformSet: make(map[core.Platform]bool)}
}

func (v *statisticsVisitor) VisitConfiguration(c *core.Configuration) {
	v.Project = c.ProjectName
}

func (v *statisticsVisitor) VisitBeneficiary(*core.Beneficiary) {
	v.Beneficiaries++
}

func (v *statisticsVisitor) VisitFundingSource(s *core.FundingSource) {
	v.Sources++
	if s.IsActive {
		v.ActiveSources++
	}
	v.platformSet[s.Platform] = true
}

func (v *statisticsVisitor) VisitTier(t *core.Tier) {
	v.Tiers++
	if t.IsActive {
		v.ActiveTiers++
	}
}

func (v *statisticsVisitor) VisitGoal(g *core.Goal) {
	v.Goals++
	if g.Progress() >= 100 {
		v.GoalsReached++
	}

	// Goal totals only aggregate while every goal shares one currency;
	// a mixed-currency document reports counts without sums.
	if v.mixed {
		return
	}
	if v.totalTarget == nil {
		target := g.Target
		current := g.Current
		v.totalTarget = &target
		v.totalRaised = &current
		return
	}
	sumTarget, err := v.totalTarget.Add(g.Target)
	if err != nil {
		v.totalTarget, v.totalRaised, v.mixed = nil, nil, true
		return
	}
	sumRaised, err := v.totalRaised.Add(g.Current)
	if err != nil {
		v.totalTarget, v.totalRaised, v.mixed = nil, nil, true
		return
	}
	v.totalTarget = &sumTarget
	v.totalRaised = &sumRaised
}

// finish resolves derived fields after traversal.
func (v *statisticsVisitor) finish() {
	for p := range v.platformSet {
		v.Platforms = append(v.Platforms, string(p))
	}
	sort.Strings(v.Platforms)

	if v.totalTarget != nil {
		v.TotalTarget = v.totalTarget.String()
		v.TotalCurrent = v.totalRaised.String()
	}
}

func runStats(cmd *cobra.Command, path string) error {
	cfg, _, err := parseFile(cmd, path)
	if err != nil {
		return err
	}

	v := newStatisticsVisitor()
	core.Accept(cfg, v)
	v.finish()

	r := GetRenderer(cmd.Context())
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(v)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.SetTitle("Statistics for %q", v.Project)
	t.AppendRow(table.Row{"Beneficiaries", v.Beneficiaries})
	t.AppendRow(table.Row{"Funding sources", v.Sources})
	t.AppendRow(table.Row{"Active sources", v.ActiveSources})
	t.AppendRow(table.Row{"Distinct platforms", len(v.Platforms)})
	t.AppendRow(table.Row{"Tiers", v.Tiers})
	t.AppendRow(table.Row{"Active tiers", v.ActiveTiers})
	t.AppendRow(table.Row{"Goals", v.Goals})
	t.AppendRow(table.Row{"Goals reached", v.GoalsReached})
	if v.TotalTarget != "" {
		t.AppendSeparator()
		t.AppendRow(table.Row{"Total goal target", v.TotalTarget})
		t.AppendRow(table.Row{"Total raised", v.TotalCurrent})
	}
	t.Render()
	return nil
}
