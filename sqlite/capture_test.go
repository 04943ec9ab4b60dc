package sqlite_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/pagecrawl"
	"github.com/fwojciec/pagecrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCapture(url string) *pagecrawl.Capture {
	return &pagecrawl.Capture{
		URL:        url,
		Status:     pagecrawl.CaptureOK,
		StatusCode: 200,
		Title:      "Example",
		Payload:    json.RawMessage(`{"url":"` + url + `","title":"Example"}`),
	}
}

// clock returns a function yielding start, start+1s, start+2s, ...
func clock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

func TestCaptureService_CreateCapture(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)
		capture := newTestCapture("https://example.com")

		err := svc.CreateCapture(context.Background(), capture)

		require.NoError(t, err)
		assert.NotEmpty(t, capture.ID)
		assert.Len(t, capture.ContentHash, 16)
		assert.False(t, capture.CrawledAt.IsZero())
	})

	t.Run("same payload yields same hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)
		a := newTestCapture("https://example.com")
		b := newTestCapture("https://example.com")

		require.NoError(t, svc.CreateCapture(context.Background(), a))
		require.NoError(t, svc.CreateCapture(context.Background(), b))

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("returns error for invalid capture", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)

		err := svc.CreateCapture(context.Background(), &pagecrawl.Capture{})

		require.Error(t, err)
		assert.Equal(t, pagecrawl.EINVALID, pagecrawl.ErrorCode(err))
	})
}

func TestCaptureService_FindCaptureByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored capture", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)
		svc.SetNow(func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC) })
		created := newTestCapture("https://example.com/a")
		require.NoError(t, svc.CreateCapture(context.Background(), created))

		found, err := svc.FindCaptureByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "https://example.com/a", found.URL)
		assert.Equal(t, pagecrawl.CaptureOK, found.Status)
		assert.Equal(t, 200, found.StatusCode)
		assert.Equal(t, "Example", found.Title)
		assert.Equal(t, created.ContentHash, found.ContentHash)
		assert.JSONEq(t, string(created.Payload), string(found.Payload))
		assert.True(t, created.CrawledAt.Equal(found.CrawledAt))
	})

	t.Run("returns ENOTFOUND for missing capture", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)

		_, err := svc.FindCaptureByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, pagecrawl.ENOTFOUND, pagecrawl.ErrorCode(err))
	})
}

func TestCaptureService_FindCaptures(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.CaptureService {
		t.Helper()
		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)
		svc.SetNow(clock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		ctx := context.Background()

		require.NoError(t, svc.CreateCapture(ctx, newTestCapture("https://example.com/a")))
		require.NoError(t, svc.CreateCapture(ctx, newTestCapture("https://example.com/b")))
		failed := newTestCapture("https://example.com/a")
		failed.Status = pagecrawl.CaptureFailed
		require.NoError(t, svc.CreateCapture(ctx, failed))
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		captures, err := svc.FindCaptures(context.Background(), pagecrawl.CaptureFilter{})

		require.NoError(t, err)
		require.Len(t, captures, 3)
		assert.Equal(t, pagecrawl.CaptureFailed, captures[0].Status)
		assert.Equal(t, "https://example.com/b", captures[1].URL)
		assert.Equal(t, "https://example.com/a", captures[2].URL)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		url := "https://example.com/a"

		captures, err := svc.FindCaptures(context.Background(), pagecrawl.CaptureFilter{URL: &url})

		require.NoError(t, err)
		assert.Len(t, captures, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		status := pagecrawl.CaptureFailed

		captures, err := svc.FindCaptures(context.Background(), pagecrawl.CaptureFilter{Status: &status})

		require.NoError(t, err)
		require.Len(t, captures, 1)
		assert.Equal(t, "https://example.com/a", captures[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		captures, err := svc.FindCaptures(context.Background(), pagecrawl.CaptureFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, captures, 1)
		assert.Equal(t, "https://example.com/b", captures[0].URL)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		captures, err := svc.FindCaptures(context.Background(), pagecrawl.CaptureFilter{Offset: 2})

		require.NoError(t, err)
		require.Len(t, captures, 1)
		assert.Equal(t, "https://example.com/a", captures[0].URL)
	})

	t.Run("returns empty list when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		id := "missing"

		captures, err := svc.FindCaptures(context.Background(), pagecrawl.CaptureFilter{ID: &id})

		require.NoError(t, err)
		assert.Empty(t, captures)
	})
}

func TestCaptureService_DeleteCapture(t *testing.T) {
	t.Parallel()

	t.Run("removes capture", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)
		capture := newTestCapture("https://example.com")
		require.NoError(t, svc.CreateCapture(context.Background(), capture))

		require.NoError(t, svc.DeleteCapture(context.Background(), capture.ID))

		_, err := svc.FindCaptureByID(context.Background(), capture.ID)
		assert.Equal(t, pagecrawl.ENOTFOUND, pagecrawl.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing capture", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCaptureService(db)

		err := svc.DeleteCapture(context.Background(), "missing")

		assert.Equal(t, pagecrawl.ENOTFOUND, pagecrawl.ErrorCode(err))
	})
}
