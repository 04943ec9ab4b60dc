package main

import (
	"bytes"
	"fmt"
)

// Run executes the crawl command. Crawl failures are written like records;
// only rendering errors fail the command. A failed file write is reported
// on stderr without failing the command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var buf bytes.Buffer
	if c.Summary {
		summary := deps.Crawler.SummarizePage(deps.Ctx, c.URL)
		if err := deps.Renderer.RenderSummary(&buf, summary); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	} else {
		result := deps.Crawler.CrawlPage(deps.Ctx, c.URL)
		if err := deps.Renderer.RenderResult(&buf, result); err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
	}

	if c.Stdout {
		_, err := deps.Stdout.Write(buf.Bytes())
		return err
	}

	path := outputPath(c.Output, deps.Config.Output, deps.Renderer)
	if err := deps.Writer.WriteOutput(deps.Ctx, path, buf.Bytes()); err != nil {
		fmt.Fprintln(deps.Stderr, "Failed to output file:", err)
		return nil
	}
	deps.Logger.Info("wrote output", "path", path, "bytes", buf.Len())
	return nil
}
