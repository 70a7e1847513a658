package main

// Build metadata, stamped in at link time:
//
//	go build -ldflags "-X main.Version=1.2.3 -X main.GitCommit=abc1234 -X main.BuildDate=2026-08-25"
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)
