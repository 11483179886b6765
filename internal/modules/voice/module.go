package voice

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/usecases"
	"github.com/sglre6355/aiobot/internal/modules/voice/infrastructure"
	"github.com/sglre6355/aiobot/internal/modules/voice/presentation"
)

// lavalinkConnectTimeout bounds adding the Lavalink node after ready.
const lavalinkConnectTimeout = 10 * time.Second

func init() {
	bot.Register(&VoiceModule{})
}

var _ bot.ConfigurableModule = (*VoiceModule)(nil)

// VoiceModule provides the join, leave and play commands.
type VoiceModule struct {
	config   *Config
	prefix   string
	handlers *presentation.Handlers
	lavalink *infrastructure.LavalinkResolver
}

// Name returns the module name.
func (m *VoiceModule) Name() string {
	return "voice"
}

// Commands returns the prefix commands for this module.
func (m *VoiceModule) Commands() []*bot.Command {
	if m.handlers == nil {
		return nil
	}
	return m.handlers.Commands(m.prefix)
}

// EventHandlers returns the event handlers for this module.
func (m *VoiceModule) EventHandlers() []bot.EventHandler {
	if m.lavalink == nil {
		return []bot.EventHandler{}
	}
	return []bot.EventHandler{
		func(s *discordgo.Session, r *discordgo.Ready) {
			go m.connectLavalink(r.User.ID)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *VoiceModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *VoiceModule) Init(deps bot.ModuleDependencies) error {
	if deps.Session == nil {
		slog.Warn("voice module initialized without session, voice commands disabled")
		return nil
	}

	m.prefix = deps.Config.CommandPrefix

	var resolver ports.TrackResolver
	if m.config.LavalinkEnabled() {
		m.lavalink = infrastructure.NewLavalinkResolver(infrastructure.LavalinkConfig{
			Address:  m.config.LavalinkAddress,
			Password: m.config.LavalinkPassword,
			Secure:   m.config.LavalinkSecure,
		})
		resolver = m.lavalink
	}

	repo := infrastructure.NewMemoryRepository()
	connector := infrastructure.NewDiscordVoiceConnector(deps.Session)
	voiceState := infrastructure.NewVoiceStateProvider(deps.Session.State, deps.Session)

	m.handlers = presentation.NewHandlers(
		usecases.NewVoiceChannelService(repo, connector, voiceState),
		usecases.NewPlaybackService(repo, resolver),
	)

	return nil
}

// Shutdown cleans up module resources.
func (m *VoiceModule) Shutdown() error {
	if m.lavalink != nil {
		m.lavalink.Close()
	}
	return nil
}

func (m *VoiceModule) connectLavalink(userID string) {
	botID, err := snowflake.Parse(userID)
	if err != nil {
		slog.Error("failed to parse bot ID", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lavalinkConnectTimeout)
	defer cancel()

	if err := m.lavalink.Connect(ctx, botID); err != nil {
		slog.Error("failed to connect to Lavalink", "address", m.config.LavalinkAddress, "error", err)
	}
}
