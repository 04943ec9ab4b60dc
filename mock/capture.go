package mock

import (
	"context"

	"github.com/fwojciec/pagecrawl"
)

var _ pagecrawl.CaptureService = (*CaptureService)(nil)

// CaptureService is a mock implementation of pagecrawl.CaptureService.
type CaptureService struct {
	CreateCaptureFn   func(ctx context.Context, capture *pagecrawl.Capture) error
	FindCaptureByIDFn func(ctx context.Context, id string) (*pagecrawl.Capture, error)
	FindCapturesFn    func(ctx context.Context, filter pagecrawl.CaptureFilter) ([]*pagecrawl.Capture, error)
	DeleteCaptureFn   func(ctx context.Context, id string) error
}

func (s *CaptureService) CreateCapture(ctx context.Context, capture *pagecrawl.Capture) error {
	return s.CreateCaptureFn(ctx, capture)
}

func (s *CaptureService) FindCaptureByID(ctx context.Context, id string) (*pagecrawl.Capture, error) {
	return s.FindCaptureByIDFn(ctx, id)
}

func (s *CaptureService) FindCaptures(ctx context.Context, filter pagecrawl.CaptureFilter) ([]*pagecrawl.Capture, error) {
	return s.FindCapturesFn(ctx, filter)
}

func (s *CaptureService) DeleteCapture(ctx context.Context, id string) error {
	return s.DeleteCaptureFn(ctx, id)
}
