package presentation

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/bot"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/usecases"
	"github.com/sglre6355/aiobot/internal/modules/voice/domain"
	"github.com/sglre6355/aiobot/internal/modules/voice/infrastructure"
)

const (
	guildID   = "1"
	authorID  = "2"
	channelID = "3"
)

type fakeConnection struct {
	movedTo      snowflake.ID
	disconnected bool
}

func (f *fakeConnection) Move(_ context.Context, channelID snowflake.ID) error {
	f.movedTo = channelID
	return nil
}

func (f *fakeConnection) Disconnect(context.Context) error {
	f.disconnected = true
	return nil
}

type fakeConnector struct {
	conn *fakeConnection
	err  error
}

func (f *fakeConnector) Connect(context.Context, snowflake.ID, snowflake.ID) (domain.Connection, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.conn = &fakeConnection{}
	return f.conn, nil
}

type fakeVoiceState struct {
	channel *ports.VoiceChannel
}

func (f *fakeVoiceState) UserVoiceChannel(snowflake.ID, snowflake.ID) (*ports.VoiceChannel, error) {
	return f.channel, nil
}

type fakeResolver struct {
	track *ports.TrackInfo
	err   error
	query string
}

func (f *fakeResolver) Resolve(_ context.Context, query string) (*ports.TrackInfo, error) {
	f.query = query
	return f.track, f.err
}

type fixture struct {
	repo      *infrastructure.MemoryRepository
	connector *fakeConnector
	state     *fakeVoiceState
	router    *bot.Router
	gateway   *bot.MockGateway
}

func newFixture(t *testing.T, resolver ports.TrackResolver) *fixture {
	t.Helper()

	f := &fixture{
		repo:      infrastructure.NewMemoryRepository(),
		connector: &fakeConnector{},
		state:     &fakeVoiceState{channel: &ports.VoiceChannel{ID: snowflake.ID(10), Name: "General"}},
		router:    bot.NewRouter("!", nil, bot.NewNormalizer("!", false)),
		gateway:   bot.NewMockGateway("bot"),
	}

	h := NewHandlers(
		usecases.NewVoiceChannelService(f.repo, f.connector, f.state),
		usecases.NewPlaybackService(f.repo, resolver),
	)
	for _, cmd := range h.Commands("!") {
		if err := f.router.Register(cmd); err != nil {
			t.Fatalf("failed to register %s: %v", cmd.Name, err)
		}
	}
	return f
}

func (f *fixture) dispatch(content string) []string {
	f.gateway.Sent = nil
	f.router.Dispatch(context.Background(), f.gateway, &discordgo.Message{
		ChannelID: channelID,
		GuildID:   guildID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
	})
	return f.gateway.SentTo(channelID)
}

func expectReply(t *testing.T, sent []string, want string) {
	t.Helper()
	if len(sent) != 1 || sent[0] != want {
		t.Errorf("expected reply %q, got %v", want, sent)
	}
}

func TestHandleJoin(t *testing.T) {
	f := newFixture(t, nil)

	expectReply(t, f.dispatch("!join"), "Joined voice channel: General")

	session := f.repo.Get(snowflake.ID(1))
	if session == nil {
		t.Fatal("expected session to be stored")
	}
	if session.ChannelID != snowflake.ID(10) {
		t.Errorf("expected channel 10, got %d", session.ChannelID)
	}
}

func TestHandleJoin_MovesExistingConnection(t *testing.T) {
	f := newFixture(t, nil)
	f.dispatch("!join")
	first := f.connector.conn

	f.state.channel = &ports.VoiceChannel{ID: snowflake.ID(11), Name: "Music"}
	expectReply(t, f.dispatch("!join"), "Joined voice channel: Music")

	if f.connector.conn != first {
		t.Error("expected no second connection")
	}
	if first.movedTo != snowflake.ID(11) {
		t.Errorf("expected move to 11, got %d", first.movedTo)
	}
	if f.repo.Count() != 1 {
		t.Errorf("expected 1 session, got %d", f.repo.Count())
	}
}

func TestHandleJoin_UserNotInVoice(t *testing.T) {
	f := newFixture(t, nil)
	f.state.channel = nil

	expectReply(t, f.dispatch("!join"), "You are not connected to a voice channel.")

	if f.repo.Count() != 0 {
		t.Error("expected no session")
	}
}

func TestHandleJoin_ConnectError(t *testing.T) {
	f := newFixture(t, nil)
	f.connector.err = errors.New("voice timeout")

	expectReply(t, f.dispatch("!join"), "An error occurred while joining: voice timeout")
}

func TestHandleJoin_DirectMessage(t *testing.T) {
	f := newFixture(t, nil)

	f.router.Dispatch(context.Background(), f.gateway, &discordgo.Message{
		ChannelID: channelID,
		Content:   "!join",
		Author:    &discordgo.User{ID: authorID},
	})

	if f.repo.Count() != 0 {
		t.Error("expected no session for direct message")
	}
}

func TestHandleLeave(t *testing.T) {
	f := newFixture(t, nil)
	f.dispatch("!join")
	conn := f.connector.conn

	expectReply(t, f.dispatch("!leave"), "Left the voice channel.")

	if !conn.disconnected {
		t.Error("expected connection to be closed")
	}
	if f.repo.Count() != 0 {
		t.Error("expected session to be removed")
	}
}

func TestHandleLeave_NotConnected(t *testing.T) {
	f := newFixture(t, nil)

	expectReply(t, f.dispatch("!leave"), "I am not in a voice channel.")
}

func TestHandlePlay(t *testing.T) {
	tests := []struct {
		name     string
		resolver *fakeResolver
		join     bool
		content  string
		want     string
	}{
		{
			name:    "not connected",
			content: "!play https://example.com/song",
			want:    "I am not in a voice channel. Use `!join` first.",
		},
		{
			name:    "acknowledges locator without resolver",
			join:    true,
			content: "!play https://example.com/song",
			want:    "Attempting to play: https://example.com/song",
		},
		{
			name:     "names resolved track",
			resolver: &fakeResolver{track: &ports.TrackInfo{Title: "Song"}},
			join:     true,
			content:  "!play never gonna give you up",
			want:     "Attempting to play: Song",
		},
		{
			name:     "no results",
			resolver: &fakeResolver{},
			join:     true,
			content:  "!play nothing",
			want:     "An error occurred while trying to play: no results found",
		},
		{
			name:     "resolver error",
			resolver: &fakeResolver{err: errors.New("node down")},
			join:     true,
			content:  "!play https://example.com/song",
			want:     "An error occurred while trying to play: node down",
		},
		{
			name:    "missing url",
			join:    true,
			content: "!play",
			want:    "Missing arguments. Please check command usage. Example: `!play <url>`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolver ports.TrackResolver
			if tt.resolver != nil {
				resolver = tt.resolver
			}
			f := newFixture(t, resolver)
			if tt.join {
				f.dispatch("!join")
			}

			expectReply(t, f.dispatch(tt.content), tt.want)
		})
	}
}

func TestHandlePlay_SearchQuery(t *testing.T) {
	resolver := &fakeResolver{track: &ports.TrackInfo{Title: "Song"}}
	f := newFixture(t, resolver)
	f.dispatch("!join")

	f.dispatch("!play some words")

	if resolver.query != "ytsearch:some words" {
		t.Errorf("expected search query, got %q", resolver.query)
	}
}
