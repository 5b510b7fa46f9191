package core

import (
	"fmt"
	"sort"
	"sync"
)

// Frontend is a parser front-end for the funding DSL. Independent
// implementations (hand-written recursive descent, grammar-tool based)
// are interchangeable as long as they produce structurally equivalent
// configurations for the same document.
type Frontend interface {
	// Name identifies the front-end, e.g. "native" or "hcl".
	Name() string
	// Parse builds a configuration from source text. It fails fast on
	// the first lexical, syntactic, or model-building error and never
	// returns a partially populated configuration.
	Parse(text string) (*Configuration, error)
}

var (
	frontendMu sync.RWMutex
	frontends  = make(map[string]Frontend)
)

// RegisterFrontend makes a front-end available for lookup by name.
// Front-end packages call this from init.
func RegisterFrontend(f Frontend) {
	frontendMu.Lock()
	defer frontendMu.Unlock()
	frontends[f.Name()] = f
}

// GetFrontend looks up a registered front-end by name.
func GetFrontend(name string) (Frontend, error) {
	frontendMu.RLock()
	defer frontendMu.RUnlock()
	f, ok := frontends[name]
	if !ok {
		return nil, fmt.Errorf("unknown front-end %q", name)
	}
	return f, nil
}

// FrontendNames returns the registered front-end names, sorted.
func FrontendNames() []string {
	frontendMu.RLock()
	defer frontendMu.RUnlock()
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
