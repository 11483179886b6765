package ticket

// Config holds the ticket module configuration.
type Config struct {
	// CategoryID is the parent category for new ticket channels. Empty creates them at the top level.
	CategoryID string `env:"TICKET_CATEGORY_ID"`
}
