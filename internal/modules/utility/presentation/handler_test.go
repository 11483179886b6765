package presentation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/utility/application"
)

func TestPingHandler_ReturnsLatency(t *testing.T) {
	g := bot.NewMockGateway("bot")
	g.Latency = 120 * time.Millisecond
	handler := NewPingHandler(g)
	responder := &bot.MockResponder{}

	err := handler.Handle(context.Background(), nil, responder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.LastMessage() != "Pong! 120ms" {
		t.Errorf("expected content %q, got %q", "Pong! 120ms", responder.LastMessage())
	}
}

func TestPingHandler_ResponderError(t *testing.T) {
	handler := NewPingHandler(bot.NewMockGateway("bot"))
	expectedErr := errors.New("responder failed")
	responder := &bot.MockResponder{Err: expectedErr}

	err := handler.Handle(context.Background(), nil, responder)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestHelpHandler_ListsCommands(t *testing.T) {
	cmds := []*bot.Command{
		{Name: "kick", Usage: "@user [reason]", Description: "Kicks a member from the server."},
		{Name: "ping", Description: "Shows the gateway latency."},
	}
	handler := NewHelpHandler(application.NewHelpInteractor("!", func() []*bot.Command { return cmds }))
	responder := &bot.MockResponder{}

	if err := handler.Handle(context.Background(), nil, responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := responder.LastMessage()
	for _, want := range []string{"`!kick @user [reason]` - Kicks a member from the server.", "`!ping`"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected help to contain %q, got %q", want, got)
		}
	}
}
