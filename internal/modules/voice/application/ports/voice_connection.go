package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/domain"
)

// VoiceConnector defines the interface for opening voice connections.
type VoiceConnector interface {
	// Connect joins the specified voice channel and returns the live handle.
	Connect(ctx context.Context, guildID, channelID snowflake.ID) (domain.Connection, error)
}
