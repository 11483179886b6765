package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// SessionRepository stores at most one voice Session per guild.
type SessionRepository interface {
	// Get returns the Session for the given guild, or nil if not exists.
	Get(guildID snowflake.ID) *Session

	// Save stores the Session, replacing any existing one for its guild.
	Save(session *Session)

	// Delete removes the Session for the given guild.
	Delete(guildID snowflake.ID)
}
