package presentation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/giveaway/application"
	"github.com/sglre6355/aiobot/internal/modules/giveaway/domain"
)

const invalidFormatMessage = "Invalid time format. Use s, m, or h (e.g., `10s`, `5m`, `1h`)."

// Handler handles the gstart command.
type Handler struct {
	service *application.Service
}

// NewHandler creates a new Handler.
func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// Command returns the gstart command definition for prefix.
func (h *Handler) Command(prefix string) *bot.Command {
	return &bot.Command{
		Name:        "gstart",
		Description: "Starts a reaction giveaway.",
		Usage:       "<time> <winners> <prize>",
		Params: []bot.Param{
			{Name: "time", Kind: bot.ParamText},
			{Name: "winners", Kind: bot.ParamText},
			{Name: "prize", Kind: bot.ParamRest},
		},
		Permission: discordgo.PermissionManageChannels,
		Messages: map[bot.ErrorKind]string{
			bot.KindValue: fmt.Sprintf(
				"Invalid input. Usage: `%[1]sgstart <time> <winners> <prize>` (e.g., `%[1]sgstart 10s 1 My Awesome Prize`)",
				prefix,
			),
		},
		Handler: h.Handle,
	}
}

// Handle validates the arguments and runs the giveaway to completion.
func (h *Handler) Handle(ctx context.Context, inv *bot.Invocation, r bot.Responder) error {
	token := inv.Args.String("time")

	if _, err := domain.ParseDuration(token); errors.Is(err, domain.ErrInvalidFormat) {
		return bot.Reply(bot.KindValue, invalidFormatMessage, err)
	}

	winners, err := strconv.Atoi(inv.Args.String("winners"))
	if err != nil {
		return bot.ValueError(err)
	}

	gw, err := domain.NewGiveaway(token, winners, inv.Args.String("prize"))
	if err != nil {
		return bot.ValueError(err)
	}

	if _, err := h.service.Run(ctx, inv.Gateway, inv.ChannelID, gw, r); err != nil {
		return bot.Replyf("An error occurred during the giveaway: %v", err)
	}
	return nil
}
