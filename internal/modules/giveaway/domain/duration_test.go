package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token   string
		want    time.Duration
		wantErr error
	}{
		{token: "10s", want: 10 * time.Second},
		{token: "5m", want: 5 * time.Minute},
		{token: "1h", want: time.Hour},
		{token: "0s", want: 0},
		{token: "10", wantErr: ErrInvalidFormat},
		{token: "10d", wantErr: ErrInvalidFormat},
		{token: "1.5m", wantErr: ErrInvalidFormat},
		{token: "-5s", wantErr: ErrInvalidFormat},
		{token: "s", wantErr: ErrInvalidFormat},
		{token: "10S", wantErr: ErrInvalidFormat},
		{token: "", wantErr: ErrInvalidFormat},
		{token: "99999999999999999999s", wantErr: ErrOutOfRange},
		{token: "9999999999999h", wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDuration(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
