package export

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CSV renders the funding sources as a spreadsheet-friendly table, one
// row per source including inactive ones.
func (e *Exporter) CSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Platform", "Username", "Funding Type", "Active", "Custom URL", "Config"}); err != nil {
		return "", err
	}

	for _, s := range e.cfg.Sources {
		var pairs []string
		for _, key := range sortedKeys(s.Config) {
			pairs = append(pairs, fmt.Sprintf("%s=%s", key, s.Config[key]))
		}
		row := []string{
			string(s.Platform),
			s.Username,
			string(s.Type),
			strconv.FormatBool(s.IsActive),
			s.CustomURL,
			strings.Join(pairs, "; "),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// sortedKeys keeps config columns deterministic; the model's map has
// no declaration order to preserve.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
