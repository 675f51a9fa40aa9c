package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multichannel-ai/agentrouter/pkg/models"
	testdb "github.com/multichannel-ai/agentrouter/test/database"
)

func TestChannelService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	channelService := NewChannelService(client.Client)
	ctx := context.Background()

	t.Run("creates channel and normalizes phone", func(t *testing.T) {
		ch, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:    "ch_wa_main",
			ChannelName:  "Main WhatsApp",
			ChannelType:  "whatsapp",
			Provider:     "acs",
			PhoneNumber:  "+1 (234) 567-8900",
			BusinessName: "Acme",
		})
		require.NoError(t, err)
		assert.Equal(t, "+12345678900", ch.PhoneNumber)
		assert.True(t, ch.IsActive)
	})

	t.Run("rejects duplicate channel_id", func(t *testing.T) {
		_, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:   "ch_wa_main",
			ChannelName: "Other",
			ChannelType: "sms",
			Provider:    "infobip",
			PhoneNumber: "+15550000001",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects phone taken by active channel after normalization", func(t *testing.T) {
		_, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:   "ch_wa_dup",
			ChannelName: "Duplicate Phone",
			ChannelType: "whatsapp",
			Provider:    "acs",
			PhoneNumber: "+12345678900",
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDuplicatePhoneNumber, ve.Reason)
	})

	t.Run("rejects unknown channel type", func(t *testing.T) {
		_, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:   "ch_bad_type",
			ChannelName: "Bad",
			ChannelType: "telegram",
			Provider:    "acs",
			PhoneNumber: "+15550000002",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		_, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:   "ch_bad_provider",
			ChannelName: "Bad",
			ChannelType: "sms",
			Provider:    "twilio",
			PhoneNumber: "+15550000003",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects malformed phone number", func(t *testing.T) {
		_, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:   "ch_bad_phone",
			ChannelName: "Bad",
			ChannelType: "sms",
			Provider:    "acs",
			PhoneNumber: "not-a-number",
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonInvalidFormat, ve.Reason)
	})

	t.Run("allows reuse of a soft-deleted channel's phone", func(t *testing.T) {
		seedChannel(t, channelService, "ch_old", "+15550000010")
		require.NoError(t, channelService.Delete(ctx, "ch_old"))

		ch, err := channelService.Create(ctx, models.CreateChannelRequest{
			ChannelID:   "ch_new",
			ChannelName: "Replacement",
			ChannelType: "whatsapp",
			Provider:    "acs",
			PhoneNumber: "+15550000010",
		})
		require.NoError(t, err)
		assert.Equal(t, "+15550000010", ch.PhoneNumber)
	})
}

func TestChannelService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	channelService := NewChannelService(client.Client)
	ctx := context.Background()

	seedChannel(t, channelService, "ch_a", "+15550000020")
	seedChannel(t, channelService, "ch_b", "+15550000021")

	t.Run("updates name without touching phone", func(t *testing.T) {
		ch, err := channelService.Update(ctx, "ch_a", models.UpdateChannelRequest{
			ChannelName: strPtr("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", ch.ChannelName)
		assert.Equal(t, "+15550000020", ch.PhoneNumber)
	})

	t.Run("rejects phone change colliding with another active channel", func(t *testing.T) {
		_, err := channelService.Update(ctx, "ch_a", models.UpdateChannelRequest{
			PhoneNumber: strPtr("+1 555 000 0021"),
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDuplicatePhoneNumber, ve.Reason)
	})

	t.Run("re-saving own phone is legal", func(t *testing.T) {
		ch, err := channelService.Update(ctx, "ch_a", models.UpdateChannelRequest{
			PhoneNumber: strPtr("+15550000020"),
		})
		require.NoError(t, err)
		assert.Equal(t, "+15550000020", ch.PhoneNumber)
	})

	t.Run("reactivation re-checks phone uniqueness", func(t *testing.T) {
		require.NoError(t, channelService.Delete(ctx, "ch_b"))
		seedChannel(t, channelService, "ch_c", "+15550000021")

		_, err := channelService.Update(ctx, "ch_b", models.UpdateChannelRequest{
			IsActive: boolPtr(true),
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDuplicatePhoneNumber, ve.Reason)
	})

	t.Run("update unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := channelService.Update(ctx, "ch_missing", models.UpdateChannelRequest{
			ChannelName: strPtr("x"),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChannelService_GetByPhone(t *testing.T) {
	client := testdb.NewTestClient(t)
	channelService := NewChannelService(client.Client)
	ctx := context.Background()

	seedChannel(t, channelService, "ch_lookup", "+15550000030")

	t.Run("finds active channel by formatted phone", func(t *testing.T) {
		ch, err := channelService.GetByPhone(ctx, "+1 (555) 000-0030")
		require.NoError(t, err)
		assert.Equal(t, "ch_lookup", ch.ID)
	})

	t.Run("soft-deleted channel is not found", func(t *testing.T) {
		require.NoError(t, channelService.Delete(ctx, "ch_lookup"))

		_, err := channelService.GetByPhone(ctx, "+15550000030")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChannelService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	channelService := NewChannelService(client.Client)
	ctx := context.Background()

	seedChannel(t, channelService, "ch_wa", "+15550000040")
	_, err := channelService.Create(ctx, models.CreateChannelRequest{
		ChannelID:   "ch_sms",
		ChannelName: "SMS Line",
		ChannelType: "sms",
		Provider:    "infobip",
		PhoneNumber: "+15550000041",
	})
	require.NoError(t, err)

	t.Run("filters by channel type", func(t *testing.T) {
		channels, err := channelService.List(ctx, models.ChannelListParams{ChannelType: "sms"})
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "ch_sms", channels[0].ID)
	})

	t.Run("rejects unknown type filter", func(t *testing.T) {
		_, err := channelService.List(ctx, models.ChannelListParams{ChannelType: "telegram"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("filters by is_active", func(t *testing.T) {
		require.NoError(t, channelService.Delete(ctx, "ch_sms"))

		channels, err := channelService.List(ctx, models.ChannelListParams{IsActive: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "ch_wa", channels[0].ID)
	})
}
