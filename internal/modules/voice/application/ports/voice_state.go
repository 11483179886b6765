package ports

import (
	"github.com/disgoorg/snowflake/v2"
)

// VoiceChannel identifies a voice channel by ID and display name.
type VoiceChannel struct {
	ID   snowflake.ID
	Name string
}

// VoiceStateProvider defines the interface for getting Discord voice state information.
type VoiceStateProvider interface {
	// UserVoiceChannel returns the voice channel the user is currently in.
	// Returns nil if the user is not in a voice channel.
	UserVoiceChannel(guildID, userID snowflake.ID) (*VoiceChannel, error)
}
