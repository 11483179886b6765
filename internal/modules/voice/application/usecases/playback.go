package usecases

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
	"github.com/sglre6355/aiobot/internal/modules/voice/domain"
)

// PlayInput contains the input for the Play use case.
type PlayInput struct {
	GuildID snowflake.ID
	Locator string
}

// PlayOutput contains the result of the Play use case.
type PlayOutput struct {
	// Title is the resolved track title, or the locator itself without a resolver.
	Title string
	Track *ports.TrackInfo
}

// PlaybackService acknowledges play requests. Audio is not streamed.
type PlaybackService struct {
	repo     domain.SessionRepository
	resolver ports.TrackResolver
}

// NewPlaybackService creates a new PlaybackService. resolver may be nil.
func NewPlaybackService(repo domain.SessionRepository, resolver ports.TrackResolver) *PlaybackService {
	return &PlaybackService{
		repo:     repo,
		resolver: resolver,
	}
}

// Play checks the bot is connected and resolves the locator's metadata when a resolver is set.
func (p *PlaybackService) Play(ctx context.Context, input PlayInput) (*PlayOutput, error) {
	if p.repo.Get(input.GuildID) == nil {
		return nil, ErrNotConnected
	}

	locator := domain.NewLocator(input.Locator)
	if !locator.IsValid() {
		return nil, ErrInvalidLocator
	}

	if p.resolver == nil {
		return &PlayOutput{Title: locator.Raw}, nil
	}

	track, err := p.resolver.Resolve(ctx, locator.LavalinkQuery())
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, ErrNoResults
	}

	return &PlayOutput{Title: track.Title, Track: track}, nil
}
