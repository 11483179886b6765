package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/scheduler"
)

// EventHandler is a generic handler for any Discord event.
// It should be a function matching one of discordgo's handler signatures,
// e.g., func(s *discordgo.Session, m *discordgo.GuildMemberAdd)
type EventHandler any

// ModuleDependencies provides dependencies that modules may need during initialization.
type ModuleDependencies struct {
	Config    *Config
	Gateway   Gateway
	Scheduler *scheduler.Scheduler

	// Session is the live gateway session for modules that need voice or
	// state access beyond Gateway. Nil in tests.
	Session *discordgo.Session

	// Commands lists every registered command once the router is built.
	Commands func() []*Command
}

// Module defines the interface that all bot modules must implement.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Commands returns the prefix commands that this module provides.
	// Called after Init.
	Commands() []*Command

	// EventHandlers returns event handlers for this module.
	// Each handler should match a discordgo handler signature.
	EventHandlers() []EventHandler

	// Init initializes the module with the provided dependencies.
	Init(deps ModuleDependencies) error

	// Shutdown gracefully shuts down the module.
	Shutdown() error
}

// ConfigurableModule is an optional interface for modules that need configuration.
// Modules implementing this interface will have LoadConfig called before Init.
type ConfigurableModule interface {
	// LoadConfig loads and validates module-specific configuration.
	// Called before Init() and before Discord connection is established.
	// Should return an error if required configuration is missing or invalid.
	LoadConfig() error
}
