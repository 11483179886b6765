package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/scheduler"
)

// intents covers prefix commands (message content), member joins and voice state.
const intents = discordgo.IntentsAllWithoutPrivileged |
	discordgo.IntentsGuildMembers |
	discordgo.IntentMessageContent

// shutdownTimeout bounds the keep-alive server shutdown.
const shutdownTimeout = 5 * time.Second

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config    *Config
	session   *discordgo.Session
	gateway   Gateway
	modules   []Module
	router    *Router
	scheduler *scheduler.Scheduler
	keepAlive *KeepAliveServer
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	normalizer := NewNormalizer(cfg.CommandPrefix, cfg.SurfaceUnclassifiedErrors)
	limiter := NewUserLimiter(cfg.CommandRateLimit, cfg.CommandRateBurst)

	return &Bot{
		config:    cfg,
		modules:   make([]Module, 0),
		router:    NewRouter(cfg.CommandPrefix, limiter, normalizer),
		scheduler: scheduler.New(),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Router returns the command router.
func (b *Bot) Router() *Router {
	return b.router
}

// Start initializes the bot, registers commands, and connects to Discord.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = intents
	b.session = session
	b.gateway = NewSessionGateway(session)

	// Load module configuration before anything touches Discord
	if err := b.loadModuleConfigs(); err != nil {
		return err
	}

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Register commands
	if err := b.buildRouter(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	// Register message and module event handlers
	b.session.AddHandler(b.router.HandleMessage(b.gateway))
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if b.config.KeepAliveAddr != "" {
		b.keepAlive = NewKeepAliveServer(b.config.KeepAliveAddr, b.session.HeartbeatLatency)
		b.keepAlive.Start()
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
		"prefix", b.config.CommandPrefix,
	)

	return nil
}

// Stop gracefully shuts down the bot. Pending scheduled work is cancelled.
func (b *Bot) Stop() error {
	if b.keepAlive != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := b.keepAlive.Shutdown(ctx); err != nil {
			slog.Warn("failed to shutdown keep-alive server", "error", err)
		}
		cancel()
	}

	if pending := b.scheduler.Pending(); len(pending) > 0 {
		slog.Warn("cancelling pending tasks", "tasks", pending)
	}
	b.scheduler.Shutdown()

	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// loadModuleConfigs calls LoadConfig on modules that need configuration.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		cm, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cm.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Config:    b.config,
		Gateway:   b.gateway,
		Session:   b.session,
		Scheduler: b.scheduler,
		Commands:  b.router.Commands,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildRouter registers every module command with the router.
func (b *Bot) buildRouter() error {
	for _, mod := range b.modules {
		for _, cmd := range mod.Commands() {
			if err := b.router.Register(cmd); err != nil {
				return fmt.Errorf("module %s: %w", mod.Name(), err)
			}
			slog.Debug("registered command", "module", mod.Name(), "command", cmd.Name)
		}
	}
	return nil
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}
