package domain

import (
	"errors"
	"time"
)

// ErrInvalidWinnerCount is returned when fewer than one winner is requested.
var ErrInvalidWinnerCount = errors.New("winner count must be at least 1")

// Giveaway describes a single reaction-based prize draw.
type Giveaway struct {
	Prize    string
	Winners  int
	Duration time.Duration
	// DurationText is the token the duration was parsed from, e.g. "10m".
	DurationText string
}

// NewGiveaway validates and builds a Giveaway.
func NewGiveaway(durationText string, winners int, prize string) (*Giveaway, error) {
	d, err := ParseDuration(durationText)
	if err != nil {
		return nil, err
	}
	if winners < 1 {
		return nil, ErrInvalidWinnerCount
	}
	return &Giveaway{
		Prize:        prize,
		Winners:      winners,
		Duration:     d,
		DurationText: durationText,
	}, nil
}
