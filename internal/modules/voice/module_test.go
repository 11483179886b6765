package voice

import (
	"testing"

	"github.com/sglre6355/aiobot/internal/bot"
)

func TestVoiceModule_InitWithoutSession(t *testing.T) {
	m := &VoiceModule{config: &Config{}}

	if err := m.Init(bot.ModuleDependencies{Config: &bot.Config{CommandPrefix: "!"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmds := m.Commands(); len(cmds) != 0 {
		t.Errorf("expected no commands without session, got %d", len(cmds))
	}
	if err := m.Shutdown(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_LavalinkEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want bool
	}{
		{"nil", nil, false},
		{"empty", &Config{}, false},
		{"address", &Config{LavalinkAddress: "localhost:2333"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.LavalinkEnabled(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
