package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/disgolink/v3/disgolink"
	"github.com/disgoorg/disgolink/v3/lavalink"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/aiobot/internal/modules/voice/application/ports"
)

// ErrLavalinkUnavailable is returned when no Lavalink node is connected.
var ErrLavalinkUnavailable = errors.New("lavalink is not connected")

// LavalinkConfig holds Lavalink node connection settings.
type LavalinkConfig struct {
	Address  string
	Password string
	Secure   bool
}

// LavalinkResolver resolves locators to tracks through a Lavalink node.
// The client needs the bot user ID, so it is created by Connect once the
// gateway session is ready.
type LavalinkResolver struct {
	config LavalinkConfig

	mu   sync.RWMutex
	link disgolink.Client
}

// NewLavalinkResolver creates a new LavalinkResolver. Call Connect before Resolve.
func NewLavalinkResolver(config LavalinkConfig) *LavalinkResolver {
	return &LavalinkResolver{config: config}
}

// Connect creates the Lavalink client and adds the configured node.
// Subsequent calls are no-ops while a client exists.
func (r *LavalinkResolver) Connect(ctx context.Context, botID snowflake.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.link != nil {
		return nil
	}

	link := disgolink.New(botID)
	node, err := link.AddNode(ctx, disgolink.NodeConfig{
		Name:     "main",
		Address:  r.config.Address,
		Password: r.config.Password,
		Secure:   r.config.Secure,
	})
	if err != nil {
		link.Close()
		return fmt.Errorf("failed to add Lavalink node: %w", err)
	}
	r.link = link

	slog.Info("connected to Lavalink", "node", node.Config().Name, "address", r.config.Address)

	return nil
}

// Resolve loads tracks for query and returns the first one, or nil when
// nothing matched.
func (r *LavalinkResolver) Resolve(ctx context.Context, query string) (*ports.TrackInfo, error) {
	r.mu.RLock()
	link := r.link
	r.mu.RUnlock()

	if link == nil {
		return nil, ErrLavalinkUnavailable
	}

	node := link.BestNode()
	if node == nil {
		return nil, ErrLavalinkUnavailable
	}

	result, err := node.LoadTracks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracks: %w", err)
	}

	return firstTrack(result)
}

// Close shuts the Lavalink client down.
func (r *LavalinkResolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.link != nil {
		r.link.Close()
		r.link = nil
	}
}

func firstTrack(result *lavalink.LoadResult) (*ports.TrackInfo, error) {
	switch data := result.Data.(type) {
	case lavalink.Track:
		return convertTrack(data), nil

	case lavalink.Playlist:
		if len(data.Tracks) == 0 {
			return nil, nil
		}
		return convertTrack(data.Tracks[0]), nil

	case lavalink.Search:
		if len(data) == 0 {
			return nil, nil
		}
		return convertTrack(data[0]), nil

	case lavalink.Exception:
		return nil, fmt.Errorf("failed to load tracks: %s", data.Message)

	default:
		return nil, nil
	}
}

func convertTrack(track lavalink.Track) *ports.TrackInfo {
	info := track.Info
	uri := ""
	if info.URI != nil {
		uri = *info.URI
	}

	return &ports.TrackInfo{
		Identifier: info.Identifier,
		Title:      info.Title,
		Artist:     info.Author,
		Duration:   time.Duration(info.Length) * time.Millisecond,
		URI:        uri,
		IsStream:   info.IsStream,
	}
}

// Ensure LavalinkResolver implements ports.TrackResolver.
var _ ports.TrackResolver = (*LavalinkResolver)(nil)
