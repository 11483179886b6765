package bot

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Responder provides an abstraction for replying to a command invocation.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Send posts a text reply in the originating channel.
	Send(content string) (*discordgo.Message, error)

	// SendEmbed posts an embed reply in the originating channel.
	SendEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

// ChannelResponder implements Responder by posting to a channel.
type ChannelResponder struct {
	gateway   Gateway
	channelID string
}

// NewChannelResponder creates a new ChannelResponder.
func NewChannelResponder(g Gateway, channelID string) *ChannelResponder {
	return &ChannelResponder{
		gateway:   g,
		channelID: channelID,
	}
}

// Send posts content via the Discord API.
func (r *ChannelResponder) Send(content string) (*discordgo.Message, error) {
	return r.gateway.ChannelMessageSend(r.channelID, content)
}

// SendEmbed posts embed via the Discord API.
func (r *ChannelResponder) SendEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return r.gateway.ChannelMessageSendEmbed(r.channelID, embed)
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	mu       sync.Mutex
	Messages []string
	Embeds   []*discordgo.MessageEmbed
	Err      error
	nextID   int
}

// Send records the content for testing.
func (m *MockResponder) Send(content string) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	m.Messages = append(m.Messages, content)
	return m.message(content), nil
}

// SendEmbed records the embed for testing.
func (m *MockResponder) SendEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	m.Embeds = append(m.Embeds, embed)
	msg := m.message("")
	msg.Embeds = []*discordgo.MessageEmbed{embed}
	return msg, nil
}

// LastMessage returns the most recent text reply, or "".
func (m *MockResponder) LastMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Messages) == 0 {
		return ""
	}
	return m.Messages[len(m.Messages)-1]
}

// Count returns the number of replies of any kind.
func (m *MockResponder) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Messages) + len(m.Embeds)
}

func (m *MockResponder) message(content string) *discordgo.Message {
	m.nextID++
	return &discordgo.Message{
		ID:      "reply-" + strconv.Itoa(m.nextID),
		Content: content,
	}
}
