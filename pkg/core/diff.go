package core

import "fmt"

// Diff compares two configurations field by field and returns a
// human-readable description of every mismatch. Amount magnitudes are
// compared by value, so 5 and 5.0 are equal. An empty result means the
// configurations are structurally equivalent: same field values, same
// declaration order.
func Diff(a, b *Configuration) []string {
	var diffs []string
	add := func(format string, args ...any) {
		diffs = append(diffs, fmt.Sprintf(format, args...))
	}

	if a.ProjectName != b.ProjectName {
		add("project_name: %q != %q", a.ProjectName, b.ProjectName)
	}
	if a.Description != b.Description {
		add("description: %q != %q", a.Description, b.Description)
	}
	if a.PreferredCurrency != b.PreferredCurrency {
		add("currency: %s != %s", a.PreferredCurrency, b.PreferredCurrency)
	}
	if !amountPtrEqual(a.MinAmount, b.MinAmount) {
		add("min_amount: %s != %s", amountPtrString(a.MinAmount), amountPtrString(b.MinAmount))
	}
	if !amountPtrEqual(a.MaxAmount, b.MaxAmount) {
		add("max_amount: %s != %s", amountPtrString(a.MaxAmount), amountPtrString(b.MaxAmount))
	}

	if len(a.Beneficiaries) != len(b.Beneficiaries) {
		add("beneficiaries: %d != %d", len(a.Beneficiaries), len(b.Beneficiaries))
	} else {
		for i := range a.Beneficiaries {
			if *a.Beneficiaries[i] != *b.Beneficiaries[i] {
				add("beneficiary[%d] %q differs", i, a.Beneficiaries[i].Name)
			}
		}
	}

	if len(a.Sources) != len(b.Sources) {
		add("sources: %d != %d", len(a.Sources), len(b.Sources))
	} else {
		for i := range a.Sources {
			if !sourceEqual(a.Sources[i], b.Sources[i]) {
				add("source[%d] %s %q differs", i, a.Sources[i].Platform, a.Sources[i].Username)
			}
		}
	}

	if len(a.Tiers) != len(b.Tiers) {
		add("tiers: %d != %d", len(a.Tiers), len(b.Tiers))
	} else {
		for i := range a.Tiers {
			if !tierEqual(a.Tiers[i], b.Tiers[i]) {
				add("tier[%d] %q differs", i, a.Tiers[i].Name)
			}
		}
	}

	if len(a.Goals) != len(b.Goals) {
		add("goals: %d != %d", len(a.Goals), len(b.Goals))
	} else {
		for i := range a.Goals {
			if !goalEqual(a.Goals[i], b.Goals[i]) {
				add("goal[%d] %q differs", i, a.Goals[i].Name)
			}
		}
	}

	return diffs
}

// Equal reports whether two configurations are structurally equivalent.
func Equal(a, b *Configuration) bool {
	return len(Diff(a, b)) == 0
}

func amountPtrEqual(a, b *CurrencyAmount) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func amountPtrString(a *CurrencyAmount) string {
	if a == nil {
		return "<unset>"
	}
	return a.String()
}

func sourceEqual(a, b *FundingSource) bool {
	if a.Platform != b.Platform || a.Username != b.Username ||
		a.Type != b.Type || a.IsActive != b.IsActive || a.CustomURL != b.CustomURL {
		return false
	}
	if len(a.Config) != len(b.Config) {
		return false
	}
	for k, v := range a.Config {
		if b.Config[k] != v {
			return false
		}
	}
	return true
}

func tierEqual(a, b *Tier) bool {
	if a.Name != b.Name || !a.Amount.Equal(b.Amount) ||
		a.Description != b.Description || a.MaxSponsors != b.MaxSponsors ||
		a.IsActive != b.IsActive || len(a.Benefits) != len(b.Benefits) {
		return false
	}
	for i := range a.Benefits {
		if a.Benefits[i] != b.Benefits[i] {
			return false
		}
	}
	return true
}

func goalEqual(a, b *Goal) bool {
	if a.Name != b.Name || !a.Target.Equal(b.Target) ||
		!a.Current.Equal(b.Current) || a.Description != b.Description {
		return false
	}
	if a.Deadline == nil || b.Deadline == nil {
		return a.Deadline == nil && b.Deadline == nil
	}
	return a.Deadline.Equal(*b.Deadline)
}
