package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecrawl"
	"github.com/fwojciec/pagecrawl/crawl"
	"github.com/fwojciec/pagecrawl/fs"
	"github.com/fwojciec/pagecrawl/goquery"
	pchttp "github.com/fwojciec/pagecrawl/http"
	"github.com/fwojciec/pagecrawl/markdown"
	pcslog "github.com/fwojciec/pagecrawl/slog"
	"github.com/fwojciec/pagecrawl/sqlite"
	"github.com/fwojciec/pagecrawl/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used for the capture archive, opened only when a
	// database path is configured.
	DB *sqlite.DB

	// Overrides for end-to-end testing. Nil values use the real
	// implementations.
	Fetcher pagecrawl.Fetcher
	Writer  pagecrawl.OutputWriter
	Now     func() time.Time
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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagecrawl"),
		kong.Description("Crawl a web page into a structured JSON record"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_url": pagecrawl.DefaultPageURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: logger,
		Writer: m.Writer,
	}
	if deps.Writer == nil {
		deps.Writer = fs.NewWriter()
	}

	// Open the capture archive when configured; the archive commands need it.
	needsDB := strings.HasPrefix(cmd, "history") || strings.HasPrefix(cmd, "show") || strings.HasPrefix(cmd, "delete")
	if needsDB && cfg.Database == "" {
		return fmt.Errorf("no capture database configured. Set --db or PAGECRAWL_DB")
	}
	if cfg.Database != "" {
		m.DB = sqlite.NewDB(cfg.Database)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGECRAWL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.Database, err)
		}
		defer m.Close()
		deps.Captures = pcslog.NewLoggingCaptureService(sqlite.NewCaptureService(m.DB), logger)
	}

	if strings.HasPrefix(cmd, "crawl") {
		deps.Renderer = rendererFor(cli.Crawl.Format)
		deps.Crawler = m.newCrawler(cfg, logger, deps.Captures)
	}

	return kongCtx.Run(deps)
}

// loadConfig merges defaults, the YAML config file and explicit flags, in
// that order of precedence.
func loadConfig(cli *CLI) (pagecrawl.Config, error) {
	cfg := pagecrawl.DefaultConfig()
	if path := yaml.FindConfig(cli.Config); path != "" {
		loaded, err := yaml.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cli.DB != "" {
		cfg.Database = cli.DB
	}
	c := cli.Crawl
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.Delay > 0 {
		cfg.Delay = c.Delay
	}
	if c.NoDelay {
		cfg.Delay = 0
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (m *Main) newCrawler(cfg pagecrawl.Config, logger *slog.Logger, captures pagecrawl.CaptureService) *crawl.Crawler {
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
		Now:       m.Now,
	}
}

func rendererFor(format string) pagecrawl.Renderer {
	if format == formatMarkdown {
		return markdown.NewRenderer()
	}
	return pagecrawl.NewJSONRenderer()
}

// outputPath returns the file to write. An explicit path is used as is;
// otherwise the configured path takes the renderer's extension.
func outputPath(explicit, configured string, r pagecrawl.Renderer) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(configured, filepath.Ext(configured)) + r.Extension()
}
