package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var errGuildOnly = errors.New("command is only available in a server")

// Router maps prefixed messages to registered commands.
type Router struct {
	prefix     string
	commands   map[string]*Command
	limiter    *UserLimiter
	normalizer *Normalizer
}

// NewRouter creates a Router for prefix. limiter may be nil.
func NewRouter(prefix string, limiter *UserLimiter, normalizer *Normalizer) *Router {
	return &Router{
		prefix:     prefix,
		commands:   make(map[string]*Command),
		limiter:    limiter,
		normalizer: normalizer,
	}
}

// Prefix returns the trigger prefix.
func (r *Router) Prefix() string {
	return r.prefix
}

// Register adds cmd. Names must be unique and only the last parameter may be a rest parameter.
func (r *Router) Register(cmd *Command) error {
	if cmd.Name == "" || strings.ContainsFunc(cmd.Name, isSpaceRune) {
		return fmt.Errorf("invalid command name %q", cmd.Name)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %s has no handler", cmd.Name)
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("command %s is already registered", cmd.Name)
	}
	for i, p := range cmd.Params {
		if p.Kind == ParamRest && i != len(cmd.Params)-1 {
			return fmt.Errorf("command %s: rest parameter %s must be last", cmd.Name, p.Name)
		}
	}

	r.commands[cmd.Name] = cmd
	return nil
}

// Lookup returns the command registered under name.
func (r *Router) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns all registered commands sorted by name.
func (r *Router) Commands() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// HandleMessage is the discordgo handler for MessageCreate events.
func (r *Router) HandleMessage(g Gateway) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		r.Dispatch(context.Background(), g, m.Message)
	}
}

// Dispatch routes a single message. It reports whether the message was a
// command invocation (known or not).
func (r *Router) Dispatch(ctx context.Context, g Gateway, m *discordgo.Message) bool {
	if m == nil || m.Author == nil || m.Author.Bot {
		return false
	}
	if !strings.HasPrefix(m.Content, r.prefix) {
		return false
	}

	body := m.Content[len(r.prefix):]
	if body == "" || isSpaceRune(rune(body[0])) {
		return false
	}
	name, raw := splitInvocation(body)

	responder := NewChannelResponder(g, m.ChannelID)

	cmd, ok := r.commands[name]
	if !ok {
		r.normalizer.Handle(nil, responder, &CommandError{
			Kind: KindCommandNotFound,
			Err:  fmt.Errorf("command %q is not found", name),
		})
		return true
	}

	if !r.limiter.Allow(m.Author.ID) {
		r.normalizer.Handle(cmd, responder, ErrRateLimited)
		return true
	}

	inv := &Invocation{
		Gateway:   g,
		Command:   cmd,
		Prefix:    r.prefix,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Author:    m.Author,
		Member:    m.Member,
		Raw:       raw,
	}

	if err := r.invoke(ctx, inv, responder); err != nil {
		r.normalizer.Handle(cmd, responder, err)
	}
	return true
}

// invoke runs the checks, binds arguments, and calls the handler.
func (r *Router) invoke(ctx context.Context, inv *Invocation, resp Responder) error {
	cmd := inv.Command

	if cmd.GuildOnly && !inv.InGuild() {
		return Reply(KindUnclassified, "This command can only be used in a server.", errGuildOnly)
	}

	if err := checkPermissions(inv.Gateway, inv.GuildID, inv.Author.ID, inv.ChannelID, cmd.Permission); err != nil {
		return err
	}

	args, err := bindArgs(inv.Gateway, inv.GuildID, cmd.Params, inv.Raw)
	if err != nil {
		return err
	}
	inv.Args = args

	slog.Debug("invoking command",
		"command", cmd.Name,
		"user", inv.Author.ID,
		"guild", inv.GuildID,
		"channel", inv.ChannelID,
	)

	return cmd.Handler(ctx, inv, resp)
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
