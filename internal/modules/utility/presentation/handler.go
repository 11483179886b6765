package presentation

import (
	"context"

	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/utility/application"
)

// PingHandler handles the ping command.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler(latency application.LatencySource) *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(latency),
	}
}

// Handle processes the ping command and sends the response.
func (h *PingHandler) Handle(_ context.Context, _ *bot.Invocation, r bot.Responder) error {
	result := h.interactor.Execute()

	_, err := r.Send(result.Message())
	return err
}

// HelpHandler handles the help command.
type HelpHandler struct {
	interactor *application.HelpInteractor
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler(interactor *application.HelpInteractor) *HelpHandler {
	return &HelpHandler{interactor: interactor}
}

// Handle lists every registered command.
func (h *HelpHandler) Handle(_ context.Context, _ *bot.Invocation, r bot.Responder) error {
	_, err := r.Send(h.interactor.Execute().Render())
	return err
}
