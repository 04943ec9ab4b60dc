// Package fs provides file-based output for rendered crawl results.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecrawl"
)

// Ensure Writer implements pagecrawl.OutputWriter at compile time.
var _ pagecrawl.OutputWriter = (*Writer)(nil)

// Writer writes output files, replacing them atomically.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteOutput writes data to path. Parent directories are created as
// needed. Data goes to a temporary file in the same directory that is then
// renamed over path, so readers never observe a partial file.
func (w *Writer) WriteOutput(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return pagecrawl.Errorf(pagecrawl.EINVALID, "output path required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
