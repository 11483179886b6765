package ticket

import (
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/aiobot/internal/bot"
)

func init() {
	bot.Register(&TicketModule{})
}

var _ bot.ConfigurableModule = (*TicketModule)(nil)

// TicketModule provides private support channels.
type TicketModule struct {
	config   *Config
	handlers *Handlers
}

// Name returns the module name.
func (m *TicketModule) Name() string {
	return "ticket"
}

// Commands returns the prefix commands for this module.
func (m *TicketModule) Commands() []*bot.Command {
	return []*bot.Command{
		{
			Name:        "ticket",
			Description: "Opens a private support channel.",
			Handler:     m.handlers.HandleOpen,
		},
		{
			Name:        "close",
			Description: "Closes the current ticket channel.",
			Permission:  discordgo.PermissionManageChannels,
			Handler:     m.handlers.HandleClose,
		},
	}
}

// EventHandlers returns the event handlers for this module.
func (m *TicketModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *TicketModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *TicketModule) Init(deps bot.ModuleDependencies) error {
	categoryID := ""
	if m.config != nil {
		categoryID = m.config.CategoryID
	}
	m.handlers = NewHandlers(deps.Scheduler, categoryID)
	return nil
}

// Shutdown cleans up module resources. Pending deletions are owned by the scheduler.
func (m *TicketModule) Shutdown() error {
	return nil
}
