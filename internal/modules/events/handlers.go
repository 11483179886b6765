package events

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/bot"
)

const welcomeFormat = "Welcome %s to the server! Please read the rules."

// Handlers reacts to gateway lifecycle and membership events.
type Handlers struct {
	gateway          bot.Gateway
	statusText       string
	welcomeChannelID string
}

// NewHandlers creates Handlers. An empty welcomeChannelID disables greetings.
func NewHandlers(g bot.Gateway, statusText, welcomeChannelID string) *Handlers {
	return &Handlers{
		gateway:          g,
		statusText:       statusText,
		welcomeChannelID: welcomeChannelID,
	}
}

// HandleReady sets the presence once the gateway session is ready.
func (h *Handlers) HandleReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User != nil {
		slog.Info("logged in", "user_id", r.User.ID, "username", r.User.Username, "guilds", len(r.Guilds))
	}

	if err := h.gateway.UpdateGameStatus(0, h.statusText); err != nil {
		slog.Error("failed to update status", "status", h.statusText, "error", err)
	}
}

// HandleMemberJoin greets a new member in the welcome channel, if it resolves.
func (h *Handlers) HandleMemberJoin(_ *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if e.Member == nil || e.User == nil {
		return
	}
	slog.Info("member joined", "guild", e.GuildID, "user", e.User.ID)

	if h.welcomeChannelID == "" {
		return
	}

	channel, err := h.gateway.Channel(h.welcomeChannelID)
	if err != nil || channel == nil {
		slog.Debug("welcome channel not found", "channel", h.welcomeChannelID, "error", err)
		return
	}

	content := fmt.Sprintf(welcomeFormat, bot.Mention(e.Member))
	if _, err := h.gateway.ChannelMessageSend(channel.ID, content); err != nil {
		slog.Error("failed to send welcome message", "channel", channel.ID, "user", e.User.ID, "error", err)
	}
}
