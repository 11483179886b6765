package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/giveaway/domain"
)

const (
	// EntryEmoji is the reaction entrants click.
	EntryEmoji = "🎉"

	reactionPageSize = 100

	colorGold  = 0xF1C40F
	colorGreen = 0x2ECC71
)

// Waiter suspends a run for the giveaway duration. Implemented by *scheduler.Scheduler.
type Waiter interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Service runs giveaways from announcement to winner announcement.
type Service struct {
	waiter Waiter
	picker domain.Picker
}

// NewService creates a Service. A nil picker uses domain.DefaultPicker.
func NewService(waiter Waiter, picker domain.Picker) *Service {
	if picker == nil {
		picker = domain.DefaultPicker
	}
	return &Service{
		waiter: waiter,
		picker: picker,
	}
}

// Result summarises a finished giveaway.
type Result struct {
	MessageID string
	Entrants  int
	Winners   []string
	// Abandoned is set when the wait was interrupted by shutdown.
	Abandoned bool
}

// Run announces gw in channelID, waits for it to end, and announces the winners.
func (s *Service) Run(
	ctx context.Context,
	g bot.Gateway,
	channelID string,
	gw *domain.Giveaway,
	r bot.Responder,
) (*Result, error) {
	announcement, err := r.SendEmbed(AnnouncementEmbed(gw))
	if err != nil {
		return nil, fmt.Errorf("failed to send announcement: %w", err)
	}
	result := &Result{MessageID: announcement.ID}

	if err := g.MessageReactionAdd(channelID, announcement.ID, EntryEmoji); err != nil {
		return result, fmt.Errorf("failed to add entry reaction: %w", err)
	}

	slog.Info("started giveaway",
		"channel", channelID,
		"message", announcement.ID,
		"prize", gw.Prize,
		"winners", gw.Winners,
		"duration", gw.Duration,
	)

	if err := s.waiter.Sleep(ctx, gw.Duration); err != nil {
		slog.Warn("abandoned giveaway", "channel", channelID, "message", announcement.ID, "error", err)
		result.Abandoned = true
		return result, nil
	}

	// Re-fetch so a deleted announcement ends the run.
	if _, err := g.ChannelMessage(channelID, announcement.ID); err != nil {
		return result, fmt.Errorf("failed to fetch announcement: %w", err)
	}

	entrants, err := collectEntrants(g, channelID, announcement.ID, g.SelfID())
	if err != nil {
		return result, err
	}
	result.Entrants = len(entrants)

	if len(entrants) == 0 {
		_, err := r.Send("No one reacted to the giveaway. No winner.")
		return result, err
	}

	result.Winners = domain.SelectWinners(entrants, gw.Winners, s.picker)

	if _, err := r.SendEmbed(WinnerEmbed(gw, result.Winners)); err != nil {
		return result, fmt.Errorf("failed to announce winners: %w", err)
	}

	slog.Info("ended giveaway",
		"channel", channelID,
		"message", announcement.ID,
		"entrants", result.Entrants,
		"winners", result.Winners,
	)

	return result, nil
}

// collectEntrants pages through the entry reactions and drops selfID.
func collectEntrants(g bot.Gateway, channelID, messageID, selfID string) ([]string, error) {
	var entrants []string
	afterID := ""

	for {
		users, err := g.MessageReactions(channelID, messageID, EntryEmoji, reactionPageSize, "", afterID)
		if err != nil {
			return nil, fmt.Errorf("failed to list reactions: %w", err)
		}
		for _, u := range users {
			if u.ID == selfID {
				continue
			}
			entrants = append(entrants, u.ID)
		}
		if len(users) < reactionPageSize {
			return entrants, nil
		}
		afterID = users[len(users)-1].ID
	}
}

// AnnouncementEmbed renders the opening announcement.
func AnnouncementEmbed(gw *domain.Giveaway) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎉 Giveaway! 🎉",
		Description: fmt.Sprintf("Prize: **%s**\nReact with %s to enter!", gw.Prize, EntryEmoji),
		Color:       colorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Ends in %s | Winners: %d", gw.DurationText, gw.Winners),
		},
	}
}

// WinnerEmbed renders the closing announcement for winnerIDs.
func WinnerEmbed(gw *domain.Giveaway, winnerIDs []string) *discordgo.MessageEmbed {
	mentions := make([]string, len(winnerIDs))
	for i, id := range winnerIDs {
		mentions[i] = "<@" + id + ">"
	}
	return &discordgo.MessageEmbed{
		Title:       "🎉 Giveaway Ended! 🎉",
		Description: fmt.Sprintf("The winner(s) of **%s** is/are: %s!", gw.Prize, strings.Join(mentions, ", ")),
		Color:       colorGreen,
	}
}
