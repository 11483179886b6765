package application

import (
	"time"

	"github.com/sglre6355/aiobot/internal/modules/utility/domain"
)

// LatencySource reports the gateway heartbeat latency.
type LatencySource interface {
	HeartbeatLatency() time.Duration
}

// PingInteractor handles the ping use case.
type PingInteractor struct {
	latency LatencySource
}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor(latency LatencySource) *PingInteractor {
	return &PingInteractor{latency: latency}
}

// Execute performs the ping operation and returns the result.
func (p *PingInteractor) Execute() *domain.PingResult {
	return domain.NewPingResult(p.latency.HeartbeatLatency())
}
