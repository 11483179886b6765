package moderation

import (
	"github.com/sglre6355/aiobot/internal/bot"
)

func init() {
	bot.Register(&ModerationModule{})
}

// ModerationModule provides the kick, ban and timeout commands.
type ModerationModule struct {
	prefix   string
	handlers *Handlers
}

// Name returns the module name.
func (m *ModerationModule) Name() string {
	return "moderation"
}

// Commands returns the prefix commands for this module.
func (m *ModerationModule) Commands() []*bot.Command {
	return Commands(m.prefix, m.handlers)
}

// EventHandlers returns the event handlers for this module.
func (m *ModerationModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{}
}

// Init initializes the module.
func (m *ModerationModule) Init(deps bot.ModuleDependencies) error {
	m.prefix = deps.Config.CommandPrefix
	m.handlers = NewHandlers()
	return nil
}

// Shutdown cleans up module resources.
func (m *ModerationModule) Shutdown() error {
	return nil
}
