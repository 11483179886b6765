package usecases

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
	"github.com/sglre6355/aiobot/internal/modules/voice/domain"
)

type mockRepository struct {
	sessions map[snowflake.ID]*domain.Session
	deleted  []snowflake.ID
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		sessions: make(map[snowflake.ID]*domain.Session),
	}
}

func (m *mockRepository) Get(guildID snowflake.ID) *domain.Session {
	return m.sessions[guildID]
}

func (m *mockRepository) Save(session *domain.Session) {
	m.sessions[session.GuildID] = session
}

func (m *mockRepository) Delete(guildID snowflake.ID) {
	m.deleted = append(m.deleted, guildID)
	delete(m.sessions, guildID)
}

// createConnectedSession saves a Session backed by a mockConnection and returns both.
func (m *mockRepository) createConnectedSession(guildID, channelID snowflake.ID) (*domain.Session, *mockConnection) {
	conn := &mockConnection{}
	session := domain.NewSession(guildID, channelID, conn)
	m.Save(session)
	return session, conn
}

type mockConnection struct {
	moves         []snowflake.ID
	disconnects   int
	moveErr       error
	disconnectErr error
}

func (m *mockConnection) Move(_ context.Context, channelID snowflake.ID) error {
	if m.moveErr != nil {
		return m.moveErr
	}
	m.moves = append(m.moves, channelID)
	return nil
}

func (m *mockConnection) Disconnect(_ context.Context) error {
	if m.disconnectErr != nil {
		return m.disconnectErr
	}
	m.disconnects++
	return nil
}

type mockConnector struct {
	connects []snowflake.ID
	conn     *mockConnection
	err      error
}

func (m *mockConnector) Connect(_ context.Context, _, channelID snowflake.ID) (domain.Connection, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.connects = append(m.connects, channelID)
	if m.conn == nil {
		m.conn = &mockConnection{}
	}
	return m.conn, nil
}

type mockVoiceStateProvider struct {
	channels map[snowflake.ID]*ports.VoiceChannel
	err      error
}

func newMockVoiceStateProvider() *mockVoiceStateProvider {
	return &mockVoiceStateProvider{
		channels: make(map[snowflake.ID]*ports.VoiceChannel),
	}
}

func (m *mockVoiceStateProvider) UserVoiceChannel(_, userID snowflake.ID) (*ports.VoiceChannel, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.channels[userID], nil
}

type mockResolver struct {
	queries []string
	track   *ports.TrackInfo
	err     error
}

func (m *mockResolver) Resolve(_ context.Context, query string) (*ports.TrackInfo, error) {
	m.queries = append(m.queries, query)
	return m.track, m.err
}
