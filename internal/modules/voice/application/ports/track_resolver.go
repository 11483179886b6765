package ports

import (
	"context"
	"time"
)

// TrackInfo is the metadata of a resolved track.
type TrackInfo struct {
	Identifier string
	Title      string
	Artist     string
	Duration   time.Duration
	URI        string
	IsStream   bool
}

// TrackResolver defines the interface for resolving a locator to track metadata.
type TrackResolver interface {
	// Resolve loads the first track matching query.
	Resolve(ctx context.Context, query string) (*TrackInfo, error)
}
