// Package main implements the relver CLI tool.
package main

import (
	"github.com/joho/godotenv"

	"github.com/relver/relver/internal/cli"
)

func main() {
	// A local .env can supply GITHUB_REPOSITORY during development.
	// Variables already set in the environment win.
	_ = godotenv.Load()
	cli.SetBuildInfo(Version, GitCommit, BuildDate)
	cli.Execute()
}
