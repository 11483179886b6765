package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
	"github.com/sglre6355/aiobot/internal/modules/voice/domain"
)

// JoinInput contains the input for the Join use case.
type JoinInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// JoinOutput contains the result of the Join use case.
type JoinOutput struct {
	VoiceChannelID snowflake.ID
	ChannelName    string
	// Moved is set when an existing connection was moved instead of opened.
	Moved bool
}

// LeaveInput contains the input for the Leave use case.
type LeaveInput struct {
	GuildID snowflake.ID
}

// VoiceChannelService handles voice channel operations.
//
// Sessions are only removed by Leave. A connection dropped by Discord keeps
// its stale entry until the next Leave.
type VoiceChannelService struct {
	repo       domain.SessionRepository
	connector  ports.VoiceConnector
	voiceState ports.VoiceStateProvider
}

// NewVoiceChannelService creates a new VoiceChannelService.
func NewVoiceChannelService(
	repo domain.SessionRepository,
	connector ports.VoiceConnector,
	voiceState ports.VoiceStateProvider,
) *VoiceChannelService {
	return &VoiceChannelService{
		repo:       repo,
		connector:  connector,
		voiceState: voiceState,
	}
}

// Join joins the bot to the user's voice channel, moving an existing connection if there is one.
func (v *VoiceChannelService) Join(ctx context.Context, input JoinInput) (*JoinOutput, error) {
	channel, err := v.voiceState.UserVoiceChannel(input.GuildID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voice state: %w", err)
	}
	if channel == nil {
		return nil, ErrUserNotInVoice
	}

	output := &JoinOutput{VoiceChannelID: channel.ID, ChannelName: channel.Name}

	if existing := v.repo.Get(input.GuildID); existing != nil {
		if err := existing.Conn.Move(ctx, channel.ID); err != nil {
			return nil, err
		}
		existing.SetChannel(channel.ID)
		output.Moved = true

		slog.Info("moved voice connection", "guild", input.GuildID, "channel", channel.ID)
		return output, nil
	}

	conn, err := v.connector.Connect(ctx, input.GuildID, channel.ID)
	if err != nil {
		return nil, err
	}
	v.repo.Save(domain.NewSession(input.GuildID, channel.ID, conn))

	slog.Info("joined voice channel", "guild", input.GuildID, "channel", channel.ID)
	return output, nil
}

// Leave disconnects the bot and deletes the guild's session.
func (v *VoiceChannelService) Leave(ctx context.Context, input LeaveInput) error {
	session := v.repo.Get(input.GuildID)
	if session == nil {
		return ErrNotConnected
	}

	if err := session.Conn.Disconnect(ctx); err != nil {
		return err
	}

	v.repo.Delete(input.GuildID)

	slog.Info("left voice channel", "guild", input.GuildID, "channel", session.ChannelID)
	return nil
}
