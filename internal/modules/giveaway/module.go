package giveaway

import (
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/giveaway/application"
	"github.com/sglre6355/aiobot/internal/modules/giveaway/presentation"
)

func init() {
	bot.Register(&GiveawayModule{})
}

// GiveawayModule provides reaction giveaways.
type GiveawayModule struct {
	prefix  string
	handler *presentation.Handler
}

// Name returns the module name.
func (m *GiveawayModule) Name() string {
	return "giveaway"
}

// Commands returns the prefix commands for this module.
func (m *GiveawayModule) Commands() []*bot.Command {
	return []*bot.Command{m.handler.Command(m.prefix)}
}

// EventHandlers returns the event handlers for this module.
func (m *GiveawayModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{}
}

// Init initializes the module. Running giveaways wait on the shared scheduler,
// so they are abandoned when the bot shuts down.
func (m *GiveawayModule) Init(deps bot.ModuleDependencies) error {
	m.prefix = deps.Config.CommandPrefix
	m.handler = presentation.NewHandler(application.NewService(deps.Scheduler, nil))
	return nil
}

// Shutdown cleans up module resources.
func (m *GiveawayModule) Shutdown() error {
	return nil
}
