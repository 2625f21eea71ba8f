// Command zinfo prints the redshift exponent registry and the scale
// factors it implies for a pair of redshifts.
//
// Usage:
//
//	zinfo list [--format table|yaml]
//	zinfo factor (--z Z | --z-in ZIN --z-out ZOUT) [name ...]
//
// Without names, factor prints every registered quantity.
//
// Examples:
//
//	zinfo list --format yaml
//	zinfo factor --z 1
//	zinfo factor --z-in 0.5 --z-out 2 flux ivar
package main

import (
	"os"

	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = errColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
