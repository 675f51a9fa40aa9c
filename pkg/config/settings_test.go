package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := Load()
		assert.Equal(t, "8080", s.HTTPPort)
		assert.False(t, s.MessagingEnabled)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("MESSAGING_CONNECT_ENABLED", "true")
		t.Setenv("ACS_ENDPOINT", "https://myacs.communication.azure.com")
		t.Setenv("WHATSAPP_CHANNEL_ID", "wa-chan")
		t.Setenv("SMS_CHANNEL_ID", "sms-chan")

		s := Load()
		assert.Equal(t, "9090", s.HTTPPort)
		assert.True(t, s.MessagingEnabled)
		assert.Equal(t, "https://myacs.communication.azure.com", s.ACSEndpoint)
	})
}

func TestSettings_ChannelChain(t *testing.T) {
	t.Run("whatsapp before sms", func(t *testing.T) {
		s := Settings{WhatsAppChannelID: "wa", SMSChannelID: "sms"}
		assert.Equal(t, []string{"wa", "sms"}, s.ChannelChain())
	})

	t.Run("skips unset channels", func(t *testing.T) {
		s := Settings{SMSChannelID: "sms"}
		assert.Equal(t, []string{"sms"}, s.ChannelChain())
	})

	t.Run("empty when nothing configured", func(t *testing.T) {
		assert.Nil(t, Settings{}.ChannelChain())
	})
}
