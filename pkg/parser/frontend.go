package parser

import "github.com/fundinglabs/fundingdsl/pkg/core"

// nativeFrontend adapts the hand-written parser to the shared
// front-end contract so it can be compared against other front-ends.
type nativeFrontend struct{}

// Name returns "native".
func (nativeFrontend) Name() string { return "native" }

// Parse implements core.Frontend.
func (nativeFrontend) Parse(text string) (*core.Configuration, error) {
	return Parse(text)
}

func init() {
	core.RegisterFrontend(nativeFrontend{})
}
