package voice

// Config holds the voice module configuration. Lavalink is optional; without
// an address, play only acknowledges the locator.
type Config struct {
	LavalinkAddress  string `env:"LAVALINK_ADDRESS"`
	LavalinkPassword string `env:"LAVALINK_PASSWORD"`
	LavalinkSecure   bool   `env:"LAVALINK_SECURE" envDefault:"false"`
}

// LavalinkEnabled reports whether a Lavalink node is configured.
func (c *Config) LavalinkEnabled() bool {
	return c != nil && c.LavalinkAddress != ""
}
