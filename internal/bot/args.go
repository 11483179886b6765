package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/disgoorg/snowflake/v2"
)

var (
	errUnterminatedQuote = errors.New("expected closing quote")
	errNotMember         = errors.New("not a member mention or user ID")
	errMemberNotFound    = errors.New("member not found")
	errNoGuild           = errors.New("members can only be resolved in a server")
)

// argScanner walks the raw argument text left to right.
type argScanner struct {
	text string
	pos  int
}

func (s *argScanner) skipSpace() {
	for s.pos < len(s.text) {
		r := rune(s.text[s.pos])
		if r >= 0x80 || !unicode.IsSpace(r) {
			return
		}
		s.pos++
	}
}

// next returns the next token. A token starting with a double quote runs to
// the closing quote and may contain whitespace.
func (s *argScanner) next() (string, bool, error) {
	s.skipSpace()
	if s.pos >= len(s.text) {
		return "", false, nil
	}

	if s.text[s.pos] == '"' {
		end := strings.IndexByte(s.text[s.pos+1:], '"')
		if end < 0 {
			return "", false, errUnterminatedQuote
		}
		token := s.text[s.pos+1 : s.pos+1+end]
		s.pos += end + 2
		return token, true, nil
	}

	start := s.pos
	for s.pos < len(s.text) {
		r := rune(s.text[s.pos])
		if r < 0x80 && unicode.IsSpace(r) {
			break
		}
		s.pos++
	}
	return s.text[start:s.pos], true, nil
}

// rest returns everything not consumed yet with surrounding whitespace trimmed.
func (s *argScanner) rest() string {
	r := strings.TrimSpace(s.text[s.pos:])
	s.pos = len(s.text)
	return r
}

// splitInvocation separates the command name from its argument text.
func splitInvocation(content string) (name, raw string) {
	content = strings.TrimLeftFunc(content, unicode.IsSpace)
	idx := strings.IndexFunc(content, unicode.IsSpace)
	if idx < 0 {
		return content, ""
	}
	return content[:idx], content[idx:]
}

// bindArgs converts raw into values for params, left to right.
func bindArgs(g Gateway, guildID string, params []Param, raw string) (Args, error) {
	args := make(Args, len(params))
	scanner := &argScanner{text: raw}

	for _, p := range params {
		if p.Kind == ParamRest {
			text := scanner.rest()
			if text == "" {
				if p.Optional {
					continue
				}
				return nil, MissingArgument(p.Name)
			}
			args[p.Name] = text
			continue
		}

		token, ok, err := scanner.next()
		if err != nil {
			return nil, BadArgument(p.Name, err)
		}
		if !ok {
			if p.Optional {
				continue
			}
			return nil, MissingArgument(p.Name)
		}

		value, err := convertArg(g, guildID, p, token)
		if err != nil {
			return nil, BadArgument(p.Name, err)
		}
		args[p.Name] = value
	}

	return args, nil
}

func convertArg(g Gateway, guildID string, p Param, token string) (any, error) {
	switch p.Kind {
	case ParamInteger:
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%q is not a whole number", token)
		}
		return n, nil
	case ParamMember:
		return resolveMember(g, guildID, token)
	default:
		return token, nil
	}
}

// parseUserID accepts <@id>, <@!id> or a bare snowflake.
func parseUserID(token string) (snowflake.ID, error) {
	if strings.HasPrefix(token, "<@") && strings.HasSuffix(token, ">") {
		token = strings.TrimPrefix(token[2:len(token)-1], "!")
	}
	id, err := snowflake.Parse(token)
	if err != nil || id == 0 {
		return 0, errNotMember
	}
	return id, nil
}

func resolveMember(g Gateway, guildID, token string) (any, error) {
	if guildID == "" {
		return nil, errNoGuild
	}
	id, err := parseUserID(token)
	if err != nil {
		return nil, err
	}
	member, err := g.GuildMember(guildID, id.String())
	if err != nil || member == nil {
		return nil, fmt.Errorf("%w: %s", errMemberNotFound, token)
	}
	if member.GuildID == "" {
		member.GuildID = guildID
	}
	return member, nil
}
