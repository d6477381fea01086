package main

import (
	"context"
	"io"

	"github.com/awalter/quickwins"
	"github.com/awalter/quickwins/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Crawler     *crawl.Crawler
	Prioritizer quickwins.Prioritizer
	Reports     quickwins.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Audit   AuditCmd `cmd:"" help:"Audit a website for on-page SEO issues"`
	Verbose bool     `short:"v" help:"Log service activity to stderr"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	URL         string `arg:"" help:"Website URL or domain to audit"`
	MaxPages    int    `default:"60" help:"Maximum pages to analyze"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent fetch limit"`
	Report      string `short:"r" help:"Write an xlsx action plan to this path"`
}
