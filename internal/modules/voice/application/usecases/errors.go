package usecases

import "errors"

// Domain errors for the voice module.
var (
	// ErrNotConnected is returned when an operation requires the bot to be in a voice channel.
	ErrNotConnected = errors.New("not connected to a voice channel")

	// ErrUserNotInVoice is returned when the user is not in a voice channel.
	ErrUserNotInVoice = errors.New("user is not in a voice channel")

	// ErrNoResults is returned when a locator resolves to nothing.
	ErrNoResults = errors.New("no results found")

	// ErrInvalidLocator is returned when the play locator is blank.
	ErrInvalidLocator = errors.New("invalid locator")
)
