package events

import (
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/aiobot/internal/bot"
)

func init() {
	bot.Register(&EventsModule{})
}

var _ bot.ConfigurableModule = (*EventsModule)(nil)

// EventsModule sets the presence on ready and greets new members.
type EventsModule struct {
	config   *Config
	handlers *Handlers
}

// Name returns the module name.
func (m *EventsModule) Name() string {
	return "events"
}

// Commands returns nil; this module only listens to events.
func (m *EventsModule) Commands() []*bot.Command {
	return nil
}

// EventHandlers returns the event handlers for this module.
func (m *EventsModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, r *discordgo.Ready) {
			m.handlers.HandleReady(s, r)
		},
		func(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
			m.handlers.HandleMemberJoin(s, e)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *EventsModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *EventsModule) Init(deps bot.ModuleDependencies) error {
	welcome := ""
	if m.config != nil {
		welcome = m.config.WelcomeChannelID
	}
	m.handlers = NewHandlers(deps.Gateway, deps.Config.StatusText, welcome)
	return nil
}

// Shutdown cleans up module resources.
func (m *EventsModule) Shutdown() error {
	return nil
}
