package pagecrawl

import (
	"context"
	"encoding/json"
	"time"
)

// Capture status values.
const (
	CaptureOK     = "ok"
	CaptureFailed = FailedStatus
)

// Capture is an archived crawl result.
type Capture struct {
	ID          string          `json:"id"`
	URL         string          `json:"url"`
	Status      string          `json:"status"`
	StatusCode  int             `json:"statusCode"`
	Title       string          `json:"title"`
	ContentHash string          `json:"contentHash"`
	Payload     json.RawMessage `json:"payload"`
	CrawledAt   time.Time       `json:"crawledAt"`
}

// NewCapture serializes a crawl result into a capture ready to be archived.
func NewCapture(result *CrawlResult) (*Capture, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	c := &Capture{
		URL:     result.URL(),
		Status:  CaptureOK,
		Payload: payload,
	}
	if result.Failed() {
		c.Status = CaptureFailed
	} else {
		c.StatusCode = result.Page.StatusCode
		c.Title = result.Page.Title
	}
	return c, nil
}

// Validate returns an error if the capture contains invalid fields.
func (c *Capture) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "capture URL required")
	}
	if c.Status != CaptureOK && c.Status != CaptureFailed {
		return Errorf(EINVALID, "invalid capture status %q", c.Status)
	}
	if len(c.Payload) == 0 {
		return Errorf(EINVALID, "capture payload required")
	}
	return nil
}

// CaptureService represents a service for archiving crawl results.
// Captures are never used to answer a crawl.
type CaptureService interface {
	// CreateCapture archives a new capture.
	CreateCapture(ctx context.Context, capture *Capture) error

	// FindCaptureByID retrieves a capture by ID.
	// Returns ENOTFOUND if capture does not exist.
	FindCaptureByID(ctx context.Context, id string) (*Capture, error)

	// FindCaptures retrieves captures matching the filter, newest first.
	FindCaptures(ctx context.Context, filter CaptureFilter) ([]*Capture, error)

	// DeleteCapture permanently removes a capture.
	// Returns ENOTFOUND if capture does not exist.
	DeleteCapture(ctx context.Context, id string) error
}

// CaptureFilter represents a filter for FindCaptures.
type CaptureFilter struct {
	ID     *string `json:"id"`
	URL    *string `json:"url"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
