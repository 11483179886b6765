package domain

import (
	"strings"
)

// SearchSource is the Lavalink search prefix used for non-URL locators.
type SearchSource string

const (
	// SourceYouTube searches YouTube.
	SourceYouTube SearchSource = "ytsearch"
	// SourceDirect indicates a direct URL (no search prefix).
	SourceDirect SearchSource = ""
)

// Locator is what the user asked to play: a URL or free-text search.
type Locator struct {
	Raw    string
	Source SearchSource
	IsURL  bool
}

// NewLocator creates a Locator from user input. Non-URL input is treated as a
// YouTube search.
func NewLocator(input string) *Locator {
	input = strings.TrimSpace(input)

	if isURL(input) {
		return &Locator{
			Raw:    input,
			Source: SourceDirect,
			IsURL:  true,
		}
	}

	return &Locator{
		Raw:    input,
		Source: SourceYouTube,
	}
}

// LavalinkQuery returns the identifier to hand to a Lavalink track loader.
func (l *Locator) LavalinkQuery() string {
	if l.IsURL {
		return l.Raw
	}
	return string(l.Source) + ":" + l.Raw
}

// IsValid returns true if the locator is not empty.
func (l *Locator) IsValid() bool {
	return l.Raw != ""
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "www.")
}
