// Package main provides the entry point for the datacatalog CLI tool.
package main

import (
	"github.com/kbase/datacatalog/cmd/datacatalog/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
