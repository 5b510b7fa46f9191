package core

// Visitor receives one callback per entity kind during traversal.
// Implementations accumulate whatever state they need; the visited
// entities must not be mutated.
type Visitor interface {
	VisitConfiguration(c *Configuration)
	VisitBeneficiary(b *Beneficiary)
	VisitFundingSource(s *FundingSource)
	VisitTier(t *Tier)
	VisitGoal(g *Goal)
}

// Accept walks a configuration with the given visitor. Traversal order
// is fixed: the configuration itself, then beneficiaries, funding
// sources, tiers, and goals, each in declaration order.
func Accept(c *Configuration, v Visitor) {
	v.VisitConfiguration(c)
	for _, b := range c.Beneficiaries {
		v.VisitBeneficiary(b)
	}
	for _, s := range c.Sources {
		v.VisitFundingSource(s)
	}
	for _, t := range c.Tiers {
		v.VisitTier(t)
	}
	for _, g := range c.Goals {
		v.VisitGoal(g)
	}
}
