package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/pagecrawl"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := pagecrawl.CaptureFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Status != "" {
		if c.Status != pagecrawl.CaptureOK && c.Status != pagecrawl.CaptureFailed {
			return fmt.Errorf("invalid status %q: must be %q or %q", c.Status, pagecrawl.CaptureOK, pagecrawl.CaptureFailed)
		}
		filter.Status = &c.Status
	}

	captures, err := deps.Captures.FindCaptures(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecrawl.ErrorMessage(err))
		return err
	}

	if len(captures) == 0 {
		fmt.Fprintln(deps.Stdout, "No captures found. Crawl with --db to archive one.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, capture := range captures {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			capture.ID,
			capture.CrawledAt.Local().Format(time.DateTime),
			capture.Status,
			capture.URL,
			capture.Title,
		)
	}
	return tw.Flush()
}
