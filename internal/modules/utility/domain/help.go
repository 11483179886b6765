package domain

import "strings"

// HelpEntry describes one command in the help listing.
type HelpEntry struct {
	Synopsis    string
	Description string
}

// HelpPage is the rendered command listing.
type HelpPage struct {
	Entries []HelpEntry
}

// Render formats the page as a chat message.
func (p *HelpPage) Render() string {
	var b strings.Builder
	b.WriteString("**Commands**")
	for _, e := range p.Entries {
		b.WriteString("\n`")
		b.WriteString(e.Synopsis)
		b.WriteString("`")
		if e.Description != "" {
			b.WriteString(" - ")
			b.WriteString(e.Description)
		}
	}
	return b.String()
}
