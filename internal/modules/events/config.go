package events

// Config holds the events module configuration.
type Config struct {
	// WelcomeChannelID is where join greetings are posted. Empty disables greetings.
	WelcomeChannelID string `env:"WELCOME_CHANNEL_ID"`
}
