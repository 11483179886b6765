package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
	"github.com/sglre6355/aiobot/internal/modules/voice/domain"
)

// The bot joins deafened; it never listens to the channel.
const (
	selfMute = false
	selfDeaf = true
)

// VoiceJoiner opens a gateway voice connection. *discordgo.Session implements it.
type VoiceJoiner interface {
	ChannelVoiceJoin(gID, cID string, mute, deaf bool) (*discordgo.VoiceConnection, error)
}

// DiscordVoiceConnector opens voice connections through the Discord gateway.
type DiscordVoiceConnector struct {
	joiner VoiceJoiner
}

// NewDiscordVoiceConnector creates a new DiscordVoiceConnector.
func NewDiscordVoiceConnector(joiner VoiceJoiner) *DiscordVoiceConnector {
	return &DiscordVoiceConnector{joiner: joiner}
}

// Connect joins the voice channel and returns a handle to the connection.
func (c *DiscordVoiceConnector) Connect(
	ctx context.Context,
	guildID, channelID snowflake.ID,
) (domain.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vc, err := c.joiner.ChannelVoiceJoin(guildID.String(), channelID.String(), selfMute, selfDeaf)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}

	return &discordConnection{vc: vc}, nil
}

// discordConnection adapts *discordgo.VoiceConnection to domain.Connection.
type discordConnection struct {
	vc *discordgo.VoiceConnection
}

func (d *discordConnection) Move(ctx context.Context, channelID snowflake.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.vc.ChangeChannel(channelID.String(), selfMute, selfDeaf); err != nil {
		return fmt.Errorf("failed to move voice connection: %w", err)
	}
	return nil
}

func (d *discordConnection) Disconnect(ctx context.Context) error {
	if err := d.vc.Disconnect(); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	return nil
}

// Ensure DiscordVoiceConnector implements ports.VoiceConnector.
var _ ports.VoiceConnector = (*DiscordVoiceConnector)(nil)
