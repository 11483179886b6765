package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// ParamKind is the type a parameter is converted to before the handler runs.
type ParamKind int

const (
	// ParamText is a single whitespace-delimited (or double-quoted) token.
	ParamText ParamKind = iota
	// ParamInteger is a base-10 integer token.
	ParamInteger
	// ParamMember is a guild member given as a mention or a user ID.
	ParamMember
	// ParamRest captures the remaining text. Only valid as the last parameter.
	ParamRest
)

// Param declares one positional parameter of a command.
type Param struct {
	Name     string
	Kind     ParamKind
	Optional bool
	// Invalid replaces the generic bad-argument reply for this parameter.
	Invalid string
}

// CommandHandler runs a command. Returned errors are passed to the Normalizer.
type CommandHandler func(ctx context.Context, inv *Invocation, r Responder) error

// Command is a registered prefix command. Commands are immutable once the
// router is built.
type Command struct {
	Name        string
	Description string
	// Usage is the argument synopsis shown after "!name".
	Usage  string
	Params []Param
	// Permission is the set of permission bits the caller must hold. Zero means none.
	Permission int64
	GuildOnly  bool
	// Messages overrides the normalizer's generic reply per error kind.
	Messages map[ErrorKind]string
	Handler  CommandHandler
}

// Param returns the declared parameter with the given name.
func (c *Command) Param(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Synopsis renders the full invocation form, e.g. "!kick @user [reason]".
func (c *Command) Synopsis(prefix string) string {
	if c.Usage == "" {
		return prefix + c.Name
	}
	return prefix + c.Name + " " + c.Usage
}

// Invocation is the per-message context handed to a command handler.
type Invocation struct {
	Gateway Gateway
	Command *Command
	Prefix  string

	ChannelID string
	// GuildID is empty for direct messages.
	GuildID string
	Author  *discordgo.User
	Member  *discordgo.Member

	// Raw is the argument text after the command name.
	Raw  string
	Args Args
}

// InGuild reports whether the invocation came from a guild channel.
func (inv *Invocation) InGuild() bool {
	return inv.GuildID != ""
}

// Args holds bound parameter values by name.
type Args map[string]any

// Has reports whether the parameter was supplied.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a text or rest parameter, or "" when absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns an integer parameter, or 0 when absent.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Member returns a resolved member parameter, or nil when absent.
func (a Args) Member(name string) *discordgo.Member {
	v, _ := a[name].(*discordgo.Member)
	return v
}

// Mention returns the mention string for a member.
func Mention(m *discordgo.Member) string {
	if m == nil || m.User == nil {
		return ""
	}
	return m.User.Mention()
}
