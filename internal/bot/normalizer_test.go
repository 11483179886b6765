package bot

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNormalizer_Message(t *testing.T) {
	kick := &Command{
		Name:  "kick",
		Usage: "@user [reason]",
		Params: []Param{
			{Name: "member", Kind: ParamMember, Invalid: "I couldn't find that member."},
			{Name: "reason", Kind: ParamRest, Optional: true},
		},
		Messages: map[ErrorKind]string{
			KindMissingPermissions:      "You don't have permission to kick members.",
			KindMissingRequiredArgument: "Please specify a member to kick. Usage: `!kick @user [reason]`",
		},
	}
	gstart := &Command{Name: "gstart", Usage: "<time> <winners> <prize>"}

	forbidden := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden}}

	tests := []struct {
		name    string
		cmd     *Command
		err     error
		want    string
		wantOK  bool
		surface bool
	}{
		{
			name:   "explicit message wins",
			cmd:    kick,
			err:    Reply(KindMissingPermissions, "custom", nil),
			want:   "custom",
			wantOK: true,
		},
		{
			name:   "command override",
			cmd:    kick,
			err:    &CommandError{Kind: KindMissingPermissions},
			want:   "You don't have permission to kick members.",
			wantOK: true,
		},
		{
			name:   "wrapped command error",
			cmd:    kick,
			err:    fmt.Errorf("context: %w", MissingArgument("member")),
			want:   "Please specify a member to kick. Usage: `!kick @user [reason]`",
			wantOK: true,
		},
		{
			name:   "param invalid text",
			cmd:    kick,
			err:    BadArgument("member", errors.New("no such member")),
			want:   "I couldn't find that member.",
			wantOK: true,
		},
		{
			name:   "generic bad argument",
			cmd:    kick,
			err:    BadArgument("reason", errors.New("boom")),
			want:   msgBadArgument,
			wantOK: true,
		},
		{
			name:   "generic missing permissions",
			cmd:    gstart,
			err:    ErrMissingPermissions,
			want:   msgMissingPermissions,
			wantOK: true,
		},
		{
			name:   "generic missing argument",
			cmd:    gstart,
			err:    MissingArgument("time"),
			want:   "Missing arguments. Please check command usage. Example: `!gstart <time> <winners> <prize>`",
			wantOK: true,
		},
		{
			name:   "value error shows synopsis",
			cmd:    gstart,
			err:    ValueError(errors.New("overflow")),
			want:   "Invalid input. Usage: `!gstart <time> <winners> <prize>`",
			wantOK: true,
		},
		{
			name:   "command not found",
			err:    &CommandError{Kind: KindCommandNotFound},
			want:   msgCommandNotFound,
			wantOK: true,
		},
		{
			name: "rate limited is silent",
			cmd:  gstart,
			err:  ErrRateLimited,
		},
		{
			name: "unclassified is hidden",
			cmd:  gstart,
			err:  errors.New("boom"),
		},
		{
			name: "forbidden is hidden",
			cmd:  gstart,
			err:  forbidden,
		},
		{
			name:    "unclassified surfaced when enabled",
			cmd:     gstart,
			err:     errors.New("boom"),
			surface: true,
			want:    "An unexpected error occurred: boom",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer("!", tt.surface)
			got, ok := n.Message(tt.cmd, tt.err)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (%q)", tt.wantOK, ok, got)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizer_Handle_SendsAtMostOneReply(t *testing.T) {
	n := NewNormalizer("!", false)
	cmd := &Command{Name: "kick"}

	r := &MockResponder{}
	n.Handle(cmd, r, ErrMissingPermissions)
	if len(r.Messages) != 1 || r.Messages[0] != msgMissingPermissions {
		t.Errorf("expected one permission reply, got %v", r.Messages)
	}

	r = &MockResponder{}
	n.Handle(cmd, r, errors.New("hidden"))
	if len(r.Messages) != 0 {
		t.Errorf("expected no reply, got %v", r.Messages)
	}

	r = &MockResponder{}
	n.Handle(cmd, r, ErrRateLimited)
	if len(r.Messages) != 0 {
		t.Errorf("expected no reply for rate limiting, got %v", r.Messages)
	}

	r = &MockResponder{}
	n.Handle(cmd, r, nil)
	if len(r.Messages) != 0 {
		t.Errorf("expected no reply for nil error, got %v", r.Messages)
	}
}

func TestNormalizer_Handle_SendFailureIsSwallowed(t *testing.T) {
	n := NewNormalizer("!", false)
	r := &MockResponder{Err: errors.New("send failed")}

	n.Handle(&Command{Name: "kick"}, r, ErrMissingPermissions)

	if len(r.Messages) != 0 {
		t.Errorf("expected no recorded messages, got %v", r.Messages)
	}
}
