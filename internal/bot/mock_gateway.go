package bot

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// SentMessage is a message recorded by MockGateway.
type SentMessage struct {
	ChannelID string
	Content   string
	Embed     *discordgo.MessageEmbed
}

// Moderation is a kick, ban or timeout recorded by MockGateway.
type Moderation struct {
	Action  string
	GuildID string
	UserID  string
	Reason  string
	Until   *time.Time
}

// MockGateway is an in-memory Gateway for tests. It is safe for concurrent use.
type MockGateway struct {
	mu sync.Mutex

	Self    string
	Latency time.Duration
	Status  string

	// Channels holds known channels by ID; created channels are added here.
	Channels map[string]*discordgo.Channel
	// Members holds guild members by user ID.
	Members map[string]*discordgo.Member
	// Permissions holds channel permissions by user ID.
	Permissions map[string]int64
	// ReactionUsers is returned, paginated, for every reaction listing.
	ReactionUsers []*discordgo.User

	Sent        []SentMessage
	Reactions   []string
	Created     []discordgo.GuildChannelCreateData
	Deleted     []string
	Moderations []Moderation
	Fetched     []string

	SendErr      error
	CreateErr    error
	DeleteErr    error
	ModerateErr  error
	FetchErr     error
	ReactionsErr error

	nextID int
}

// NewMockGateway returns a MockGateway whose own user ID is selfID.
func NewMockGateway(selfID string) *MockGateway {
	return &MockGateway{
		Self:        selfID,
		Channels:    make(map[string]*discordgo.Channel),
		Members:     make(map[string]*discordgo.Member),
		Permissions: make(map[string]int64),
	}
}

func (m *MockGateway) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *MockGateway) SelfID() string { return m.Self }

func (m *MockGateway) HeartbeatLatency() time.Duration { return m.Latency }

func (m *MockGateway) UpdateGameStatus(_ int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Status = name
	return nil
}

func (m *MockGateway) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendErr != nil {
		return nil, m.SendErr
	}
	m.Sent = append(m.Sent, SentMessage{ChannelID: channelID, Content: content})
	return &discordgo.Message{ID: m.newID("msg"), ChannelID: channelID, Content: content}, nil
}

func (m *MockGateway) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendErr != nil {
		return nil, m.SendErr
	}
	m.Sent = append(m.Sent, SentMessage{ChannelID: channelID, Embed: embed})
	return &discordgo.Message{
		ID:        m.newID("msg"),
		ChannelID: channelID,
		Embeds:    []*discordgo.MessageEmbed{embed},
	}, nil
}

func (m *MockGateway) ChannelMessage(channelID, messageID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Fetched = append(m.Fetched, messageID)
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
}

func (m *MockGateway) MessageReactionAdd(channelID, messageID, emojiID string, _ ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reactions = append(m.Reactions, messageID+":"+emojiID)
	return nil
}

func (m *MockGateway) MessageReactions(_, _, _ string, limit int, _, afterID string, _ ...discordgo.RequestOption) ([]*discordgo.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReactionsErr != nil {
		return nil, m.ReactionsErr
	}

	start := 0
	if afterID != "" {
		for i, u := range m.ReactionUsers {
			if u.ID == afterID {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, len(m.ReactionUsers))
	page := make([]*discordgo.User, end-start)
	copy(page, m.ReactionUsers[start:end])
	return page, nil
}

func (m *MockGateway) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.Channels[channelID]
	if !ok {
		return nil, errors.New("unknown channel")
	}
	return ch, nil
}

func (m *MockGateway) ChannelDelete(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return nil, m.DeleteErr
	}
	ch := m.Channels[channelID]
	delete(m.Channels, channelID)
	m.Deleted = append(m.Deleted, channelID)
	return ch, nil
}

func (m *MockGateway) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*discordgo.Channel
	for _, ch := range m.Channels {
		if ch.GuildID == guildID {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (m *MockGateway) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	ch := &discordgo.Channel{
		ID:                   m.newID("channel"),
		GuildID:              guildID,
		Name:                 data.Name,
		Type:                 data.Type,
		ParentID:             data.ParentID,
		PermissionOverwrites: data.PermissionOverwrites,
	}
	m.Channels[ch.ID] = ch
	m.Created = append(m.Created, data)
	return ch, nil
}

func (m *MockGateway) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: "dm-" + recipientID, Type: discordgo.ChannelTypeDM}, nil
}

func (m *MockGateway) UserChannelPermissions(userID, _ string, _ ...discordgo.RequestOption) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Permissions[userID], nil
}

func (m *MockGateway) GuildMember(guildID, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	member, ok := m.Members[userID]
	if !ok {
		return nil, errors.New("unknown member")
	}
	return member, nil
}

func (m *MockGateway) GuildMemberDeleteWithReason(guildID, userID, reason string, _ ...discordgo.RequestOption) error {
	return m.moderate(Moderation{Action: "kick", GuildID: guildID, UserID: userID, Reason: reason})
}

func (m *MockGateway) GuildBanCreateWithReason(guildID, userID, reason string, _ int, _ ...discordgo.RequestOption) error {
	return m.moderate(Moderation{Action: "ban", GuildID: guildID, UserID: userID, Reason: reason})
}

func (m *MockGateway) GuildMemberTimeout(guildID, userID string, until *time.Time, _ ...discordgo.RequestOption) error {
	return m.moderate(Moderation{Action: "timeout", GuildID: guildID, UserID: userID, Until: until})
}

func (m *MockGateway) moderate(action Moderation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ModerateErr != nil {
		return m.ModerateErr
	}
	m.Moderations = append(m.Moderations, action)
	return nil
}

// SentTo returns the text messages sent to channelID.
func (m *MockGateway) SentTo(channelID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, s := range m.Sent {
		if s.ChannelID == channelID && s.Embed == nil {
			out = append(out, s.Content)
		}
	}
	return out
}

// EmbedsTo returns the embeds sent to channelID.
func (m *MockGateway) EmbedsTo(channelID string) []*discordgo.MessageEmbed {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*discordgo.MessageEmbed
	for _, s := range m.Sent {
		if s.ChannelID == channelID && s.Embed != nil {
			out = append(out, s.Embed)
		}
	}
	return out
}

// DeletedChannels returns a snapshot of deleted channel IDs.
func (m *MockGateway) DeletedChannels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.Deleted))
	copy(out, m.Deleted)
	return out
}

var _ Gateway = (*MockGateway)(nil)
