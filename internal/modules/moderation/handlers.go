package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/bot"
)

// maxTimeoutMinutes is the longest timeout Discord accepts (28 days).
const maxTimeoutMinutes = 28 * 24 * 60

var errTimeoutRange = fmt.Errorf("minutes must be between 1 and %d", maxTimeoutMinutes)

// Handlers executes moderation commands.
type Handlers struct {
	now func() time.Time
}

// NewHandlers creates Handlers.
func NewHandlers() *Handlers {
	return &Handlers{now: time.Now}
}

// HandleKick removes the member from the guild.
func (h *Handlers) HandleKick(_ context.Context, inv *bot.Invocation, r bot.Responder) error {
	member := inv.Args.Member("member")
	reason := inv.Args.String("reason")

	if err := inv.Gateway.GuildMemberDeleteWithReason(inv.GuildID, member.User.ID, reason); err != nil {
		return fmt.Errorf("failed to kick member: %w", err)
	}
	slog.Info("kicked member", "guild", inv.GuildID, "user", member.User.ID, "moderator", inv.Author.ID)

	return reply(r, actionMessage(member, "kicked", reason))
}

// HandleBan bans the member without deleting message history.
func (h *Handlers) HandleBan(_ context.Context, inv *bot.Invocation, r bot.Responder) error {
	member := inv.Args.Member("member")
	reason := inv.Args.String("reason")

	if err := inv.Gateway.GuildBanCreateWithReason(inv.GuildID, member.User.ID, reason, 0); err != nil {
		return fmt.Errorf("failed to ban member: %w", err)
	}
	slog.Info("banned member", "guild", inv.GuildID, "user", member.User.ID, "moderator", inv.Author.ID)

	return reply(r, actionMessage(member, "banned", reason))
}

// HandleTimeout times out the member for the given number of minutes.
func (h *Handlers) HandleTimeout(_ context.Context, inv *bot.Invocation, r bot.Responder) error {
	member := inv.Args.Member("member")
	minutes := inv.Args.Int("minutes")
	reason := inv.Args.String("reason")

	if minutes < 1 || minutes > maxTimeoutMinutes {
		return bot.BadArgument("minutes", errTimeoutRange)
	}

	until := h.now().Add(time.Duration(minutes) * time.Minute)

	var opts []discordgo.RequestOption
	if reason != "" {
		opts = append(opts, discordgo.WithAuditLogReason(reason))
	}
	if err := inv.Gateway.GuildMemberTimeout(inv.GuildID, member.User.ID, &until, opts...); err != nil {
		return fmt.Errorf("failed to timeout member: %w", err)
	}
	slog.Info("timed out member",
		"guild", inv.GuildID,
		"user", member.User.ID,
		"minutes", minutes,
		"moderator", inv.Author.ID,
	)

	action := fmt.Sprintf("timed out for %d minutes", minutes)
	return reply(r, actionMessage(member, action, reason))
}

func actionMessage(member *discordgo.Member, action, reason string) string {
	if reason != "" {
		return fmt.Sprintf("%s has been %s for: %s", bot.Mention(member), action, reason)
	}
	return fmt.Sprintf("%s has been %s.", bot.Mention(member), action)
}

func reply(r bot.Responder, content string) error {
	_, err := r.Send(content)
	return err
}
