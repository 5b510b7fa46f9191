// Package main provides the fundingdsl CLI entry point.
package main

import (
	"os"

	"github.com/fundinglabs/fundingdsl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
