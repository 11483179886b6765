package application

import (
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/utility/domain"
)

// HelpInteractor builds the command listing.
type HelpInteractor struct {
	prefix   string
	commands func() []*bot.Command
}

// NewHelpInteractor creates a HelpInteractor. commands is called on every
// execution, so it sees commands registered after construction.
func NewHelpInteractor(prefix string, commands func() []*bot.Command) *HelpInteractor {
	return &HelpInteractor{
		prefix:   prefix,
		commands: commands,
	}
}

// Execute returns the listing of every registered command.
func (h *HelpInteractor) Execute() *domain.HelpPage {
	cmds := h.commands()
	page := &domain.HelpPage{Entries: make([]domain.HelpEntry, 0, len(cmds))}
	for _, cmd := range cmds {
		page.Entries = append(page.Entries, domain.HelpEntry{
			Synopsis:    cmd.Synopsis(h.prefix),
			Description: cmd.Description,
		})
	}
	return page
}
