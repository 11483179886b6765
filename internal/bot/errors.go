package bot

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a command failure.
type ErrorKind int

const (
	// KindUnclassified is any failure outside the closed set below. It is
	// logged and only shown to users when explicitly enabled.
	KindUnclassified ErrorKind = iota
	KindMissingPermissions
	KindMissingRequiredArgument
	KindBadArgument
	KindCommandNotFound
	// KindForbidden means Discord refused an action because the bot lacks a permission.
	KindForbidden
	// KindValue means malformed numeric or time input inside a handler.
	KindValue
	// KindRateLimited means the caller exceeded the per-user command rate.
	KindRateLimited
)

var kindNames = map[ErrorKind]string{
	KindUnclassified:            "unclassified",
	KindMissingPermissions:      "missing_permissions",
	KindMissingRequiredArgument: "missing_required_argument",
	KindBadArgument:             "bad_argument",
	KindCommandNotFound:         "command_not_found",
	KindForbidden:               "forbidden",
	KindValue:                   "value_error",
	KindRateLimited:             "rate_limited",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// CommandError is the tagged failure a handler or the router returns.
type CommandError struct {
	Kind ErrorKind
	// Param names the offending parameter for argument errors.
	Param string
	// Message, when set, is sent to the user verbatim.
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	switch {
	case e.Err != nil && e.Param != "":
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Param, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Param != "":
		return fmt.Sprintf("%s (%s)", e.Kind, e.Param)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is matches another *CommandError by kind, so errors.Is(err, ErrBadArgument) works.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Param == "" && t.Message == "" && t.Err == nil
}

// Kind-only sentinels for errors.Is.
var (
	ErrMissingPermissions      = &CommandError{Kind: KindMissingPermissions}
	ErrMissingRequiredArgument = &CommandError{Kind: KindMissingRequiredArgument}
	ErrBadArgument             = &CommandError{Kind: KindBadArgument}
	ErrCommandNotFound         = &CommandError{Kind: KindCommandNotFound}
	ErrForbidden               = &CommandError{Kind: KindForbidden}
	ErrValue                   = &CommandError{Kind: KindValue}
	ErrRateLimited             = &CommandError{Kind: KindRateLimited}
)

// MissingArgument reports that the named parameter was not supplied.
func MissingArgument(param string) *CommandError {
	return &CommandError{Kind: KindMissingRequiredArgument, Param: param}
}

// BadArgument reports that the named parameter could not be converted.
func BadArgument(param string, err error) *CommandError {
	return &CommandError{Kind: KindBadArgument, Param: param, Err: err}
}

// ValueError reports malformed numeric input found by a handler.
func ValueError(err error) *CommandError {
	return &CommandError{Kind: KindValue, Err: err}
}

// Reply is a failure the handler has already phrased for the user.
func Reply(kind ErrorKind, message string, err error) *CommandError {
	return &CommandError{Kind: kind, Message: message, Err: err}
}

// Replyf is Reply for an unclassified failure whose text embeds err.
func Replyf(format string, err error) *CommandError {
	return &CommandError{Kind: KindUnclassified, Message: fmt.Sprintf(format, err), Err: err}
}

// Classify returns the kind of err. Errors that are not *CommandError are
// Forbidden when Discord rejected the request with 403, Unclassified otherwise.
func Classify(err error) ErrorKind {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if IsForbidden(err) {
		return KindForbidden
	}
	return KindUnclassified
}
