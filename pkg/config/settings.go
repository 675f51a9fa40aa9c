// Package config loads process settings from the environment.
package config

import "os"

// Settings holds process-level configuration. Constructed once in main
// and passed to the components that need it; no ambient globals.
type Settings struct {
	HTTPPort string

	// Outbound Messaging Connect settings. Sending is optional; the
	// routing/config API runs without it.
	MessagingEnabled  bool
	ACSEndpoint       string
	ACSAccessToken    string
	SMSChannelID      string
	WhatsAppChannelID string
}

// ChannelChain returns the default ordered channel registrations for
// outbound sends: WhatsApp first, SMS as fallback. Empty entries are
// skipped.
func (s Settings) ChannelChain() []string {
	var chain []string
	for _, id := range []string{s.WhatsAppChannelID, s.SMSChannelID} {
		if id != "" {
			chain = append(chain, id)
		}
	}
	return chain
}

// Load reads settings from environment variables, applying defaults.
func Load() Settings {
	return Settings{
		HTTPPort:          getEnvOrDefault("HTTP_PORT", "8080"),
		MessagingEnabled:  os.Getenv("MESSAGING_CONNECT_ENABLED") == "true",
		ACSEndpoint:       os.Getenv("ACS_ENDPOINT"),
		ACSAccessToken:    os.Getenv("ACS_ACCESS_TOKEN"),
		SMSChannelID:      os.Getenv("SMS_CHANNEL_ID"),
		WhatsAppChannelID: os.Getenv("WHATSAPP_CHANNEL_ID"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
