package domain

import (
	"fmt"
	"time"
)

// PingResult represents the result of a ping operation.
type PingResult struct {
	Latency   time.Duration
	Timestamp time.Time
}

// NewPingResult creates a PingResult for the given gateway heartbeat latency.
func NewPingResult(latency time.Duration) *PingResult {
	return &PingResult{
		Latency:   latency,
		Timestamp: time.Now(),
	}
}

// Milliseconds returns the latency rounded to the nearest millisecond.
func (r *PingResult) Milliseconds() int64 {
	return r.Latency.Round(time.Millisecond).Milliseconds()
}

// Message renders the reply, e.g. "Pong! 42ms".
func (r *PingResult) Message() string {
	return fmt.Sprintf("Pong! %dms", r.Milliseconds())
}
