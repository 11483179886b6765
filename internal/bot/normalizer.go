package bot

import (
	"errors"
	"fmt"
	"log/slog"
)

// Generic replies for the classified error kinds.
const (
	msgMissingPermissions = "You don't have the necessary permissions to use this command."
	msgBadArgument        = "Invalid argument provided. Please check your input."
	msgCommandNotFound    = "That command does not exist."
)

// Normalizer turns a failed invocation into at most one user-facing reply.
type Normalizer struct {
	prefix string
	// surfaceUnclassified shows unexpected errors to users instead of only logging them.
	surfaceUnclassified bool
}

// NewNormalizer creates a Normalizer for the given command prefix.
func NewNormalizer(prefix string, surfaceUnclassified bool) *Normalizer {
	return &Normalizer{
		prefix:              prefix,
		surfaceUnclassified: surfaceUnclassified,
	}
}

// Message returns the reply for err raised by cmd (nil for unknown commands).
// ok is false when the error must not be shown to the user.
func (n *Normalizer) Message(cmd *Command, err error) (string, bool) {
	var ce *CommandError
	if !errors.As(err, &ce) {
		ce = &CommandError{Kind: Classify(err), Err: err}
	}

	if ce.Message != "" {
		return ce.Message, true
	}

	if cmd != nil {
		if ce.Kind == KindBadArgument && ce.Param != "" {
			if p, ok := cmd.Param(ce.Param); ok && p.Invalid != "" {
				return p.Invalid, true
			}
		}
		if msg, ok := cmd.Messages[ce.Kind]; ok {
			return msg, true
		}
	}

	switch ce.Kind {
	case KindMissingPermissions:
		return msgMissingPermissions, true
	case KindMissingRequiredArgument:
		name, usage := "", ""
		if cmd != nil {
			name, usage = cmd.Name, cmd.Usage
		}
		return fmt.Sprintf("Missing arguments. Please check command usage. Example: `%s%s %s`",
			n.prefix, name, usage), true
	case KindBadArgument:
		return msgBadArgument, true
	case KindCommandNotFound:
		return msgCommandNotFound, true
	case KindValue:
		if cmd != nil {
			return fmt.Sprintf("Invalid input. Usage: `%s`", cmd.Synopsis(n.prefix)), true
		}
		return msgBadArgument, true
	case KindRateLimited:
		return "", false
	}

	if n.surfaceUnclassified {
		return fmt.Sprintf("An unexpected error occurred: %v", unwrapCause(ce)), true
	}
	return "", false
}

// Handle logs err and sends the normalized reply, if any, through r.
func (n *Normalizer) Handle(cmd *Command, r Responder, err error) {
	if err == nil {
		return
	}

	name := ""
	if cmd != nil {
		name = cmd.Name
	}
	kind := Classify(err)

	var ce *CommandError
	reported := errors.As(err, &ce) && ce.Message != ""

	switch {
	case (kind == KindUnclassified || kind == KindForbidden) && reported:
		slog.Warn("reported command failure", "command", name, "kind", kind.String(), "error", err)
	case kind == KindUnclassified || kind == KindForbidden:
		slog.Error("failed to handle command", "command", name, "kind", kind.String(), "error", err)
	default:
		slog.Debug("rejected command", "command", name, "kind", kind.String(), "error", err)
	}

	msg, ok := n.Message(cmd, err)
	if !ok {
		return
	}
	if _, sendErr := r.Send(msg); sendErr != nil {
		slog.Error("failed to send error reply", "command", name, "error", sendErr)
	}
}

func unwrapCause(ce *CommandError) error {
	if ce.Err != nil {
		return ce.Err
	}
	return ce
}
