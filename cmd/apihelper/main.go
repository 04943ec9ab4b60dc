// Command apihelper serves the payment documentation pages as MCP tools
// over stdio.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecrawl"
	"github.com/fwojciec/pagecrawl/crawl"
	"github.com/fwojciec/pagecrawl/goquery"
	pchttp "github.com/fwojciec/pagecrawl/http"
	"github.com/fwojciec/pagecrawl/mcp"
	pcslog "github.com/fwojciec/pagecrawl/slog"
	"github.com/fwojciec/pagecrawl/sqlite"
	"github.com/fwojciec/pagecrawl/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"YAML config file" env:"PAGECRAWL_CONFIG" placeholder:"PATH"`
	DB      string `name:"db" help:"Archive captures in this SQLite database" env:"PAGECRAWL_DB" placeholder:"PATH"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
	List    bool   `help:"Print the exposed tools and exit"`
}

// Main represents the program.
type Main struct {
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher for end-to-end testing.
	Fetcher pagecrawl.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run parses args and serves MCP requests from stdin until it is closed or
// ctx is canceled. Logs go to stderr since stdout carries the protocol.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("apihelper"),
		kong.Description("Serve payment documentation pages as MCP tools over stdio"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.List {
		for _, ep := range pagecrawl.ActiveEndpoints() {
			fmt.Fprintf(stdout, "%s\t%s\n", ep.Name, ep.URL)
		}
		return nil
	}

	cfg := pagecrawl.DefaultConfig()
	if path := yaml.FindConfig(cli.Config); path != "" {
		if cfg, err = yaml.LoadConfig(path); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cli.DB != "" {
		cfg.Database = cli.DB
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var captures pagecrawl.CaptureService
	if cfg.Database != "" {
		m.DB = sqlite.NewDB(cfg.Database)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cfg.Database, err)
		}
		defer m.Close()
		captures = pcslog.NewLoggingCaptureService(sqlite.NewCaptureService(m.DB), logger)
	}

	newCrawler := func() pagecrawl.Crawler {
		fetcher := m.Fetcher
		if fetcher == nil {
			opts := []pchttp.Option{
				pchttp.WithTimeout(cfg.Timeout),
				pchttp.WithHeaders(cfg.Headers),
			}
			if cfg.UserAgent != "" {
				opts = append(opts, pchttp.WithUserAgent(cfg.UserAgent))
			}
			fetcher = pchttp.NewFetcher(opts...)
		}
		return &crawl.Crawler{
			Fetcher:   pcslog.NewLoggingFetcher(fetcher, logger),
			Extractor: goquery.NewExtractor(),
			Captures:  captures,
			Delay:     cfg.Delay,
			Logger:    logger,
		}
	}

	logger.Info("serving", "server", mcp.ServerName, "tools", len(pagecrawl.ActiveEndpoints()))
	return mcp.NewServer(newCrawler, logger).Serve(ctx, stdin, stdout)
}
