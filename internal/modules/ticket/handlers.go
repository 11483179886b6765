package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/scheduler"
)

const (
	channelPrefix = "ticket-"

	// DefaultCloseDelay is how long a closed ticket stays before deletion.
	DefaultCloseDelay = 5 * time.Second

	memberAccess = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages
)

var errNotTicketChannel = errors.New("channel is not a ticket channel")

// Scheduler defers channel deletion. Implemented by *scheduler.Scheduler.
type Scheduler interface {
	After(name string, d time.Duration, task scheduler.Task) error
}

// Handlers executes the ticket commands.
type Handlers struct {
	scheduler  Scheduler
	categoryID string
	closeDelay time.Duration
}

// NewHandlers creates Handlers. categoryID may be empty.
func NewHandlers(s Scheduler, categoryID string) *Handlers {
	return &Handlers{
		scheduler:  s,
		categoryID: categoryID,
		closeDelay: DefaultCloseDelay,
	}
}

// ChannelName returns the private channel name for a user.
func ChannelName(userID string) string {
	return channelPrefix + userID
}

// IsTicketChannel reports whether name belongs to a ticket channel.
func IsTicketChannel(name string) bool {
	return strings.HasPrefix(name, channelPrefix)
}

// HandleOpen creates a private support channel for the author, unless one exists.
//
// The existence check and the creation are not atomic, so two concurrent
// requests from the same user may both create a channel.
func (h *Handlers) HandleOpen(_ context.Context, inv *bot.Invocation, r bot.Responder) error {
	g := inv.Gateway

	if !inv.InGuild() {
		dm, err := g.UserChannelCreate(inv.Author.ID)
		if err != nil {
			return fmt.Errorf("failed to open direct message channel: %w", err)
		}
		_, err = g.ChannelMessageSend(dm.ID, "Tickets can only be created in a server.")
		return err
	}

	name := ChannelName(inv.Author.ID)

	existing, err := findTextChannel(g, inv.GuildID, name)
	if err != nil {
		return bot.Replyf("An error occurred while creating your ticket: %v", err)
	}
	if existing != nil {
		_, err := r.Send(fmt.Sprintf("You already have an open ticket channel: %s", existing.Mention()))
		return err
	}

	channel, err := g.GuildChannelCreateComplex(inv.GuildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: h.categoryID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{ID: inv.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
			{ID: inv.Author.ID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberAccess},
			{ID: g.SelfID(), Type: discordgo.PermissionOverwriteTypeMember, Allow: memberAccess},
		},
	})
	if err != nil {
		return createError(err)
	}

	slog.Info("created ticket channel", "guild", inv.GuildID, "channel", channel.ID, "user", inv.Author.ID)

	if _, err := r.Send(fmt.Sprintf("Your ticket has been created: %s", channel.Mention())); err != nil {
		return bot.Replyf("An error occurred while setting up your ticket: %v", err)
	}
	intake := fmt.Sprintf("Hello %s! Please describe your issue here. A staff member will be with you shortly.",
		inv.Author.Mention())
	if _, err := g.ChannelMessageSend(channel.ID, intake); err != nil {
		return bot.Replyf("An error occurred while setting up your ticket: %v", err)
	}

	return nil
}

// HandleClose schedules deletion of the current ticket channel.
func (h *Handlers) HandleClose(_ context.Context, inv *bot.Invocation, r bot.Responder) error {
	g := inv.Gateway

	channel, err := g.Channel(inv.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}
	if !IsTicketChannel(channel.Name) {
		return bot.Reply(bot.KindUnclassified, "This is not a ticket channel.", errNotTicketChannel)
	}

	channelID := channel.ID
	err = h.scheduler.After(closeTaskName(channelID), h.closeDelay, func(ctx context.Context) {
		if _, err := g.ChannelDelete(channelID); err != nil {
			slog.Error("failed to delete ticket channel", "channel", channelID, "error", err)
			return
		}
		slog.Info("deleted ticket channel", "channel", channelID)
	})
	if errors.Is(err, scheduler.ErrAlreadyScheduled) {
		_, sendErr := r.Send("This ticket is already closing.")
		return sendErr
	}
	if err != nil {
		return fmt.Errorf("failed to schedule ticket deletion: %w", err)
	}

	_, err = r.Send(fmt.Sprintf("Closing this ticket in %d seconds...", int(h.closeDelay/time.Second)))
	return err
}

func closeTaskName(channelID string) string {
	return "ticket-close:" + channelID
}

func findTextChannel(g bot.Gateway, guildID, name string) (*discordgo.Channel, error) {
	channels, err := g.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch, nil
		}
	}
	return nil, nil
}

func createError(err error) error {
	if bot.IsForbidden(err) {
		return bot.Reply(bot.KindForbidden,
			"I don't have permission to create channels. Please check my role permissions.", err)
	}
	return bot.Replyf("An error occurred while creating your ticket: %v", err)
}
