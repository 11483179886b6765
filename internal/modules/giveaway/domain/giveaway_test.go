package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewGiveaway(t *testing.T) {
	tests := []struct {
		name         string
		duration     string
		winners      int
		wantDuration time.Duration
		wantErr      error
	}{
		{name: "valid", duration: "10m", winners: 2, wantDuration: 10 * time.Minute},
		{name: "zero duration", duration: "0s", winners: 1, wantDuration: 0},
		{name: "bad duration", duration: "10", winners: 1, wantErr: ErrInvalidFormat},
		{name: "unknown unit", duration: "10x", winners: 1, wantErr: ErrInvalidFormat},
		{name: "overflowing duration", duration: "9999999999999h", winners: 1, wantErr: ErrOutOfRange},
		{name: "zero winners", duration: "5s", winners: 0, wantErr: ErrInvalidWinnerCount},
		{name: "negative winners", duration: "5s", winners: -1, wantErr: ErrInvalidWinnerCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGiveaway(tt.duration, tt.winners, "Nitro")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Duration != tt.wantDuration || g.DurationText != tt.duration {
				t.Errorf("unexpected duration %v (%q)", g.Duration, g.DurationText)
			}
			if g.Winners != tt.winners || g.Prize != "Nitro" {
				t.Errorf("unexpected giveaway %+v", g)
			}
		})
	}
}
