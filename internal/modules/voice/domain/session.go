package domain

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Connection is a live voice connection handle.
type Connection interface {
	// Move switches the connection to another channel in the same guild.
	Move(ctx context.Context, channelID snowflake.ID) error

	// Disconnect closes the connection.
	Disconnect(ctx context.Context) error
}

// Session is the bot's voice presence in one guild.
type Session struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	Conn      Connection
	JoinedAt  time.Time
}

// NewSession creates a new Session for a freshly opened connection.
func NewSession(guildID, channelID snowflake.ID, conn Connection) *Session {
	return &Session{
		GuildID:   guildID,
		ChannelID: channelID,
		Conn:      conn,
		JoinedAt:  time.Now(),
	}
}

// SetChannel records a move to channelID.
func (s *Session) SetChannel(channelID snowflake.ID) {
	s.ChannelID = channelID
}
