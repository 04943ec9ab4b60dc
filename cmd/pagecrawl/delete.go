package main

import (
	"fmt"

	"github.com/fwojciec/pagecrawl"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagecrawl.Errorf(pagecrawl.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Captures.DeleteCapture(deps.Ctx, c.ID); err != nil {
		if pagecrawl.ErrorCode(err) == pagecrawl.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: capture %q not found. Use 'pagecrawl history' to see archived captures.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagecrawl.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted capture %s\n", c.ID)
	return nil
}
