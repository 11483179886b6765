package presentation

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/usecases"
)

// Handlers handles the voice commands.
type Handlers struct {
	voiceChannel *usecases.VoiceChannelService
	playback     *usecases.PlaybackService
}

// NewHandlers creates a new Handlers.
func NewHandlers(voiceChannel *usecases.VoiceChannelService, playback *usecases.PlaybackService) *Handlers {
	return &Handlers{
		voiceChannel: voiceChannel,
		playback:     playback,
	}
}

// Commands returns the join, leave and play command definitions.
func (h *Handlers) Commands(prefix string) []*bot.Command {
	return []*bot.Command{
		{
			Name:        "join",
			Description: "Joins your voice channel.",
			GuildOnly:   true,
			Handler:     h.HandleJoin,
		},
		{
			Name:        "leave",
			Description: "Leaves the voice channel.",
			GuildOnly:   true,
			Handler:     h.HandleLeave,
		},
		{
			Name:        "play",
			Description: "Plays audio from a URL.",
			Usage:       "<url>",
			Params:      []bot.Param{{Name: "url", Kind: bot.ParamRest}},
			GuildOnly:   true,
			Handler:     h.playHandler(prefix),
		},
	}
}

// HandleJoin joins or moves to the caller's voice channel.
func (h *Handlers) HandleJoin(ctx context.Context, inv *bot.Invocation, r bot.Responder) error {
	guildID, userID, err := ids(inv)
	if err != nil {
		return err
	}

	output, err := h.voiceChannel.Join(ctx, usecases.JoinInput{
		GuildID: guildID,
		UserID:  userID,
	})
	if errors.Is(err, usecases.ErrUserNotInVoice) {
		return bot.Reply(bot.KindUnclassified, "You are not connected to a voice channel.", err)
	}
	if err != nil {
		return bot.Replyf("An error occurred while joining: %v", err)
	}

	_, err = r.Send("Joined voice channel: " + output.ChannelName)
	return err
}

// HandleLeave disconnects from the guild's voice channel.
func (h *Handlers) HandleLeave(ctx context.Context, inv *bot.Invocation, r bot.Responder) error {
	guildID, _, err := ids(inv)
	if err != nil {
		return err
	}

	err = h.voiceChannel.Leave(ctx, usecases.LeaveInput{GuildID: guildID})
	if errors.Is(err, usecases.ErrNotConnected) {
		return bot.Reply(bot.KindUnclassified, "I am not in a voice channel.", err)
	}
	if err != nil {
		return bot.Replyf("An error occurred while leaving: %v", err)
	}

	_, err = r.Send("Left the voice channel.")
	return err
}

func (h *Handlers) playHandler(prefix string) bot.CommandHandler {
	notConnected := fmt.Sprintf("I am not in a voice channel. Use `%sjoin` first.", prefix)

	return func(ctx context.Context, inv *bot.Invocation, r bot.Responder) error {
		guildID, _, err := ids(inv)
		if err != nil {
			return err
		}

		output, err := h.playback.Play(ctx, usecases.PlayInput{
			GuildID: guildID,
			Locator: inv.Args.String("url"),
		})
		if errors.Is(err, usecases.ErrNotConnected) {
			return bot.Reply(bot.KindUnclassified, notConnected, err)
		}
		if err != nil {
			return bot.Replyf("An error occurred while trying to play: %v", err)
		}

		_, err = r.Send("Attempting to play: " + output.Title)
		return err
	}
}

// ids parses the invocation's guild and author IDs.
func ids(inv *bot.Invocation) (guildID, userID snowflake.ID, err error) {
	guildID, err = snowflake.Parse(inv.GuildID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid guild ID: %w", err)
	}
	userID, err = snowflake.Parse(inv.Author.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user ID: %w", err)
	}
	return guildID, userID, nil
}
