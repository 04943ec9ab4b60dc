package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecrawl"
)

// Output formats.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   pagecrawl.Config
	Logger   *slog.Logger
	Crawler  pagecrawl.Crawler
	Renderer pagecrawl.Renderer
	Writer   pagecrawl.OutputWriter
	Captures pagecrawl.CaptureService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"YAML config file (default: .pagecrawl.yaml in the working or home directory)" env:"PAGECRAWL_CONFIG" placeholder:"PATH"`
	DB      string `name:"db" help:"Archive captures in this SQLite database" env:"PAGECRAWL_DB" placeholder:"PATH"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Crawl   CrawlCmd   `cmd:"" default:"withargs" help:"Crawl a page and write its record (default command)"`
	History HistoryCmd `cmd:"" help:"List archived captures"`
	Show    ShowCmd    `cmd:"" help:"Print an archived capture"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived capture"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL       string        `arg:"" optional:"" default:"${default_url}" help:"Page URL"`
	Output    string        `short:"o" help:"Output file (default from config, dist/output.json)" placeholder:"PATH"`
	Stdout    bool          `help:"Write to stdout instead of a file"`
	Format    string        `short:"f" enum:"json,markdown" default:"json" help:"Output format (json, markdown)"`
	Summary   bool          `short:"s" help:"Write a condensed summary instead of the full record"`
	Timeout   time.Duration `help:"HTTP request timeout (default from config, 10s)"`
	Delay     time.Duration `help:"Wait before the request (default from config, 1s)"`
	NoDelay   bool          `help:"Skip the wait before the request"`
	UserAgent string        `name:"user-agent" help:"User-Agent header"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `help:"Only captures of this URL"`
	Status string `help:"Only captures with this status (ok, failed)"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of captures"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Capture ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Capture ID"`
	Force bool   `help:"Confirm deletion"`
}
