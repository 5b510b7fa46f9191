package export

import (
	"encoding/json"

	"github.com/fundinglabs/fundingdsl/pkg/core"
)

// The JSON document shape is stable: consumers rely on these field
// names, so they are spelled out rather than derived from the model.

type jsonDocument struct {
	Project       jsonProject  `json:"project"`
	Beneficiaries []jsonPerson `json:"beneficiaries"`
	Sources       []jsonSource `json:"funding_sources"`
	Tiers         []jsonTier   `json:"tiers"`
	Goals         []jsonGoal   `json:"goals"`
	Metadata      jsonMetadata `json:"metadata"`
}

type jsonProject struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Currency    string       `json:"currency"`
	MinAmount   *json.Number `json:"min_amount"`
	MaxAmount   *json.Number `json:"max_amount"`
}

type jsonPerson struct {
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	GitHubUsername string `json:"github_username,omitempty"`
	Website        string `json:"website,omitempty"`
	Description    string `json:"description,omitempty"`
}

type jsonSource struct {
	Platform    string            `json:"platform"`
	Username    string            `json:"username"`
	FundingType string            `json:"funding_type"`
	IsActive    bool              `json:"is_active"`
	CustomURL   string            `json:"custom_url,omitempty"`
	Config      map[string]string `json:"config,omitempty"`
}

type jsonAmount struct {
	Value    json.Number `json:"value"`
	Currency string      `json:"currency"`
}

type jsonTier struct {
	Name        string     `json:"name"`
	Amount      jsonAmount `json:"amount"`
	Description string     `json:"description,omitempty"`
	Benefits    []string   `json:"benefits,omitempty"`
	MaxSponsors int        `json:"max_sponsors,omitempty"`
	IsActive    bool       `json:"is_active"`
}

type jsonGoal struct {
	Name          string     `json:"name"`
	TargetAmount  jsonAmount `json:"target_amount"`
	CurrentAmount jsonAmount `json:"current_amount"`
	Description   string     `json:"description,omitempty"`
	Deadline      string     `json:"deadline,omitempty"`
	Progress      float64    `json:"progress_percentage"`
	IsReached     bool       `json:"is_reached"`
}

type jsonMetadata struct {
	GeneratedAt string `json:"generated_at"`
	Generator   string `json:"generator"`
	Version     string `json:"version"`
}

func toJSONAmount(a core.CurrencyAmount) jsonAmount {
	return jsonAmount{
		Value:    json.Number(a.Value.String()),
		Currency: string(a.Currency),
	}
}

func toJSONAmountPtr(a *core.CurrencyAmount) *json.Number {
	if a == nil {
		return nil
	}
	n := json.Number(a.Value.String())
	return &n
}

// JSON renders the full configuration as an indented JSON document.
func (e *Exporter) JSON() (string, error) {
	cfg := e.cfg

	doc := jsonDocument{
		Project: jsonProject{
			Name:        cfg.ProjectName,
			Description: cfg.Description,
			Currency:    string(cfg.PreferredCurrency),
			MinAmount:   toJSONAmountPtr(cfg.MinAmount),
			MaxAmount:   toJSONAmountPtr(cfg.MaxAmount),
		},
		Beneficiaries: []jsonPerson{},
		Sources:       []jsonSource{},
		Tiers:         []jsonTier{},
		Goals:         []jsonGoal{},
		Metadata: jsonMetadata{
			GeneratedAt: e.now().Format("2006-01-02T15:04:05Z07:00"),
			Generator:   "fundingdsl",
			Version:     "1.0",
		},
	}

	for _, b := range cfg.Beneficiaries {
		doc.Beneficiaries = append(doc.Beneficiaries, jsonPerson{
			Name:           b.Name,
			Email:          b.Email,
			GitHubUsername: b.GitHubUsername,
			Website:        b.Website,
			Description:    b.Description,
		})
	}
	for _, s := range cfg.Sources {
		doc.Sources = append(doc.Sources, jsonSource{
			Platform:    string(s.Platform),
			Username:    s.Username,
			FundingType: string(s.Type),
			IsActive:    s.IsActive,
			CustomURL:   s.CustomURL,
			Config:      s.Config,
		})
	}
	for _, t := range cfg.Tiers {
		doc.Tiers = append(doc.Tiers, jsonTier{
			Name:        t.Name,
			Amount:      toJSONAmount(t.Amount),
			Description: t.Description,
			Benefits:    t.Benefits,
			MaxSponsors: t.MaxSponsors,
			IsActive:    t.IsActive,
		})
	}
	for _, g := range cfg.Goals {
		goal := jsonGoal{
			Name:          g.Name,
			TargetAmount:  toJSONAmount(g.Target),
			CurrentAmount: toJSONAmount(g.Current),
			Description:   g.Description,
			Progress:      g.Progress(),
			IsReached:     g.Progress() >= 100,
		}
		if g.Deadline != nil {
			goal.Deadline = g.Deadline.Format(core.DeadlineLayout)
		}
		doc.Goals = append(doc.Goals, goal)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
