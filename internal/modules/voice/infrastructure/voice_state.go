package infrastructure

import (
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
)

// VoiceStateProvider provides Discord voice state information from the session cache.
type VoiceStateProvider struct {
	state *discordgo.State
	// channels is used when a channel is not cached.
	channels ChannelFetcher
}

// ChannelFetcher fetches a channel over REST. *discordgo.Session implements it.
type ChannelFetcher interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// NewVoiceStateProvider creates a new VoiceStateProvider.
func NewVoiceStateProvider(state *discordgo.State, channels ChannelFetcher) *VoiceStateProvider {
	return &VoiceStateProvider{
		state:    state,
		channels: channels,
	}
}

// UserVoiceChannel returns the voice channel that the user is currently in.
// Returns nil if the user is not in a voice channel.
func (v *VoiceStateProvider) UserVoiceChannel(guildID, userID snowflake.ID) (*ports.VoiceChannel, error) {
	guild, err := v.state.Guild(guildID.String())
	if err != nil {
		return nil, err
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID != userID.String() || vs.ChannelID == "" {
			continue
		}

		channelID, err := snowflake.Parse(vs.ChannelID)
		if err != nil {
			return nil, err
		}
		return &ports.VoiceChannel{ID: channelID, Name: v.channelName(vs.ChannelID)}, nil
	}

	return nil, nil
}

// channelName resolves a display name, falling back to the ID.
func (v *VoiceStateProvider) channelName(channelID string) string {
	if ch, err := v.state.Channel(channelID); err == nil {
		return ch.Name
	}
	if v.channels != nil {
		if ch, err := v.channels.Channel(channelID); err == nil {
			return ch.Name
		}
	}
	return channelID
}

// Ensure VoiceStateProvider implements ports.VoiceStateProvider.
var _ ports.VoiceStateProvider = (*VoiceStateProvider)(nil)
