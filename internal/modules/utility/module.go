package utility

import (
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/utility/application"
	"github.com/sglre6355/aiobot/internal/modules/utility/presentation"
)

func init() {
	bot.Register(&UtilityModule{})
}

// UtilityModule provides the ping and help commands.
type UtilityModule struct {
	pingHandler *presentation.PingHandler
	helpHandler *presentation.HelpHandler
}

// Name returns the module name.
func (m *UtilityModule) Name() string {
	return "utility"
}

// Commands returns the prefix commands for this module.
func (m *UtilityModule) Commands() []*bot.Command {
	return []*bot.Command{
		{
			Name:        "ping",
			Description: "Shows the gateway latency.",
			Handler:     m.pingHandler.Handle,
		},
		{
			Name:        "help",
			Description: "Lists all commands.",
			Handler:     m.helpHandler.Handle,
		},
	}
}

// EventHandlers returns the event handlers for this module.
func (m *UtilityModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{}
}

// Init initializes the module.
func (m *UtilityModule) Init(deps bot.ModuleDependencies) error {
	m.pingHandler = presentation.NewPingHandler(deps.Gateway)
	m.helpHandler = presentation.NewHelpHandler(
		application.NewHelpInteractor(deps.Config.CommandPrefix, deps.Commands),
	)
	return nil
}

// Shutdown cleans up module resources.
func (m *UtilityModule) Shutdown() error {
	return nil
}
