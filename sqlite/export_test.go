package sqlite

import "time"

// SetNow overrides the clock used to stamp new captures.
func (s *CaptureService) SetNow(now func() time.Time) {
	s.now = now
}
