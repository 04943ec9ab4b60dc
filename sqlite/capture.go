package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagecrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagecrawl.CaptureService = (*CaptureService)(nil)

// CaptureService implements pagecrawl.CaptureService using SQLite.
type CaptureService struct {
	db  *DB
	now func() time.Time
}

// NewCaptureService creates a new CaptureService.
func NewCaptureService(db *DB) *CaptureService {
	return &CaptureService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

const captureColumns = "id, url, status, status_code, title, content_hash, payload, crawled_at"

// CreateCapture archives a new capture. The ID, crawl time and content hash
// are assigned here.
func (s *CaptureService) CreateCapture(ctx context.Context, capture *pagecrawl.Capture) error {
	if err := capture.Validate(); err != nil {
		return err
	}

	capture.ID = uuid.New().String()
	capture.CrawledAt = s.now().UTC()
	capture.ContentHash = hashContent(capture.Payload)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO captures (`+captureColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, capture.ID, capture.URL, capture.Status, capture.StatusCode, capture.Title,
		capture.ContentHash, string(capture.Payload), formatTime(capture.CrawledAt))

	return err
}

// FindCaptureByID retrieves a capture by ID.
func (s *CaptureService) FindCaptureByID(ctx context.Context, id string) (*pagecrawl.Capture, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+captureColumns+" FROM captures WHERE id = ?", id)

	capture, err := scanCapture(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagecrawl.Errorf(pagecrawl.ENOTFOUND, "capture not found")
	}
	if err != nil {
		return nil, err
	}
	return capture, nil
}

// FindCaptures retrieves captures matching the filter, newest first.
func (s *CaptureService) FindCaptures(ctx context.Context, filter pagecrawl.CaptureFilter) ([]*pagecrawl.Capture, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + captureColumns + " FROM captures WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY crawled_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	captures := []*pagecrawl.Capture{}
	for rows.Next() {
		capture, err := scanCapture(rows)
		if err != nil {
			return nil, err
		}
		captures = append(captures, capture)
	}

	return captures, rows.Err()
}

// DeleteCapture permanently removes a capture.
func (s *CaptureService) DeleteCapture(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM captures WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagecrawl.Errorf(pagecrawl.ENOTFOUND, "capture not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCapture(row scanner) (*pagecrawl.Capture, error) {
	var capture pagecrawl.Capture
	var payload, crawledAt string

	if err := row.Scan(&capture.ID, &capture.URL, &capture.Status, &capture.StatusCode,
		&capture.Title, &capture.ContentHash, &payload, &crawledAt); err != nil {
		return nil, err
	}

	var err error
	capture.CrawledAt, err = parseTime(crawledAt, "crawled_at")
	if err != nil {
		return nil, err
	}
	capture.Payload = []byte(payload)

	return &capture, nil
}
