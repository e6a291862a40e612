package core

import "time"

// TimeProvider abstracts the clock used to stamp entries and measure signposts
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
