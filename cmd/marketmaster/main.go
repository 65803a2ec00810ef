// Package main provides the entry point for the marketmaster CLI tool.
package main

import "github.com/jugandoyeducando/marketmaster/cmd/marketmaster/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
