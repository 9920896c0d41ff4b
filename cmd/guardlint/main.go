// Command guardlint checks that guard blocks follow the EndChecks convention.
//
// The guard package's EndChecks call marks where a function's precondition
// block ends. guardlint loads the named packages and reports every call to a
// guard check that appears after the marker in the same function body, plus
// functions containing more than one marker. Functions without a marker are
// not reported; the marker is opt-in.
//
// Usage:
//
//	guardlint [--tests] [packages...]
//
// Package patterns default to "./...". The exit status is 1 when findings are
// reported, and 2 when packages could not be loaded.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	var includeTests bool
	pflag.BoolVar(&includeTests, "tests", false, "include test files in the analysis")
	pflag.Parse()
	patterns := pflag.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	findings, err := lintPackages(patterns, includeTests)
	if err != nil {
		fmt.Fprintln(os.Stderr, "guardlint:", err)
		os.Exit(2)
	}
	for _, f := range findings {
		fmt.Println(f)
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
}
