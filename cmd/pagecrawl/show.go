package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pagecrawl"
)

// Run executes the show command. The archived payload is printed as
// indented JSON.
func (c *ShowCmd) Run(deps *Dependencies) error {
	capture, err := deps.Captures.FindCaptureByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecrawl.ErrorMessage(err))
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, capture.Payload, "", "  "); err != nil {
		return fmt.Errorf("corrupt capture payload: %w", err)
	}
	buf.WriteByte('\n')

	_, err = deps.Stdout.Write(buf.Bytes())
	return err
}
