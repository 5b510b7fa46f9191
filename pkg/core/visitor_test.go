package core_test

import (
	"testing"

	"github.com/fundinglabs/fundingdsl/pkg/core"
	"github.com/stretchr/testify/assert"
)

// recordingVisitor appends a label per visit so traversal order can be
// asserted.
type recordingVisitor struct {
	visits []string
}

func (v *recordingVisitor) VisitConfiguration(c *core.Configuration) {
	v.visits = append(v.visits, "config:"+c.ProjectName)
}

func (v *recordingVisitor) VisitBeneficiary(b *core.Beneficiary) {
	v.visits = append(v.visits, "beneficiary:"+b.Name)
}

func (v *recordingVisitor) VisitFundingSource(s *core.FundingSource) {
	v.visits = append(v.visits, "source:"+s.Username)
}

func (v *recordingVisitor) VisitTier(t *core.Tier) {
	v.visits = append(v.visits, "tier:"+t.Name)
}

func (v *recordingVisitor) VisitGoal(g *core.Goal) {
	v.visits = append(v.visits, "goal:"+g.Name)
}

func TestAcceptTraversalOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Beneficiaries = []*core.Beneficiary{
		{Name: "Alice Developer"},
		{Name: "Bob Contributor"},
	}

	v := &recordingVisitor{}
	core.Accept(cfg, v)

	assert.Equal(t, []string{
		"config:Demo",
		"beneficiary:Alice Developer",
		"beneficiary:Bob Contributor",
		"source:alice-dev",
		"tier:Coffee",
		"goal:Infra",
	}, v.visits)
}

func TestAcceptEmptyConfiguration(t *testing.T) {
	v := &recordingVisitor{}
	core.Accept(&core.Configuration{ProjectName: "Empty"}, v)
	assert.Equal(t, []string{"config:Empty"}, v.visits)
}
