package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecrawl"
)

// Ensure LoggingCaptureService implements pagecrawl.CaptureService.
var _ pagecrawl.CaptureService = (*LoggingCaptureService)(nil)

// LoggingCaptureService wraps a CaptureService with debug logging.
type LoggingCaptureService struct {
	next   pagecrawl.CaptureService
	logger *slog.Logger
}

// NewLoggingCaptureService creates a new LoggingCaptureService.
func NewLoggingCaptureService(next pagecrawl.CaptureService, logger *slog.Logger) *LoggingCaptureService {
	return &LoggingCaptureService{next: next, logger: logger}
}

func (s *LoggingCaptureService) CreateCapture(ctx context.Context, capture *pagecrawl.Capture) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create capture",
			"url", capture.URL,
			"id", capture.ID,
			"status", capture.Status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCapture(ctx, capture)
}

func (s *LoggingCaptureService) FindCaptureByID(ctx context.Context, id string) (capture *pagecrawl.Capture, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find capture by id",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCaptureByID(ctx, id)
}

func (s *LoggingCaptureService) FindCaptures(ctx context.Context, filter pagecrawl.CaptureFilter) (captures []*pagecrawl.Capture, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find captures",
			"n", len(captures),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCaptures(ctx, filter)
}

func (s *LoggingCaptureService) DeleteCapture(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete capture",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCapture(ctx, id)
}
