package bot

import (
	"context"
	"errors"
	"testing"
)

func noopHandler(ctx context.Context, inv *Invocation, r Responder) error {
	return nil
}

func TestNewBot(t *testing.T) {
	cfg := &Config{
		DiscordToken:  "test-token",
		CommandPrefix: "!",
	}

	b := NewBot(cfg)

	if b == nil {
		t.Fatal("expected bot to be created, got nil")
	}
	if b.config != cfg {
		t.Error("expected config to be stored")
	}
	if b.Router().Prefix() != "!" {
		t.Errorf("expected router prefix %q, got %q", "!", b.Router().Prefix())
	}
}

func TestBot_InitModules_PassesDependencies(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token", CommandPrefix: "!"}
	b := NewBot(cfg)
	b.gateway = NewMockGateway("bot")

	mod := &stubModule{name: "tracking"}
	b.modules = []Module{mod}

	if err := b.initModules(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mod.deps.Config != cfg {
		t.Error("expected config to be passed to module")
	}
	if mod.deps.Gateway != b.gateway {
		t.Error("expected gateway to be passed to module")
	}
	if mod.deps.Scheduler == nil {
		t.Error("expected scheduler to be passed to module")
	}
	if mod.deps.Commands == nil {
		t.Error("expected command lister to be passed to module")
	}
}

func TestBot_InitModules_ReturnsInitError(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})

	expectedErr := errors.New("init failed")
	b.modules = []Module{&stubModule{name: "failing", initErr: expectedErr}}

	err := b.initModules()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestBot_BuildRouter_MultipleModules(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})

	b.modules = []Module{
		&stubModule{name: "mod1", commands: []*Command{{Name: "cmd1", Handler: noopHandler}}},
		&stubModule{name: "mod2", commands: []*Command{{Name: "cmd2", Handler: noopHandler}}},
	}

	if err := b.buildRouter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(b.router.Commands()) != 2 {
		t.Errorf("expected 2 commands, got %d", len(b.router.Commands()))
	}
	if _, ok := b.router.Lookup("cmd2"); !ok {
		t.Error("expected cmd2 to be registered")
	}
}

func TestBot_BuildRouter_DuplicateCommand(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})

	b.modules = []Module{
		&stubModule{name: "mod1", commands: []*Command{{Name: "ping", Handler: noopHandler}}},
		&stubModule{name: "mod2", commands: []*Command{{Name: "ping", Handler: noopHandler}}},
	}

	if err := b.buildRouter(); err == nil {
		t.Error("expected error for duplicate command name")
	}
}

func TestBot_InitModules_CommandsListsRouter(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})

	mod := &stubModule{name: "mod", commands: []*Command{{Name: "ping", Handler: noopHandler}}}
	b.modules = []Module{mod}

	if err := b.initModules(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.buildRouter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmds := mod.deps.Commands()
	if len(cmds) != 1 || cmds[0].Name != "ping" {
		t.Errorf("expected [ping], got %v", cmds)
	}
}

type configurableStub struct {
	stubModule
	loadErr error
	loaded  bool
}

func (m *configurableStub) LoadConfig() error {
	m.loaded = true
	return m.loadErr
}

func TestBot_LoadModuleConfigs(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})

	mod := &configurableStub{stubModule: stubModule{name: "cfg"}}
	b.modules = []Module{&stubModule{name: "plain"}, mod}

	if err := b.loadModuleConfigs(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mod.loaded {
		t.Error("expected LoadConfig to be called")
	}

	expectedErr := errors.New("bad config")
	mod.loadErr = expectedErr
	if err := b.loadModuleConfigs(); !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestBot_StopWithoutStart(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})
	b.modules = []Module{&stubModule{name: "mod", shutErr: errors.New("ignored")}}

	if err := b.Stop(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
