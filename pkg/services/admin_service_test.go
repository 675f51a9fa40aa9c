package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multichannel-ai/agentrouter/ent/channel"
	testdb "github.com/multichannel-ai/agentrouter/test/database"
)

func TestAdminService_ValidateAll(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	adminService := NewAdminService(client.Client)
	ctx := context.Background()

	t.Run("empty store is valid", func(t *testing.T) {
		report, err := adminService.ValidateAll(ctx)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Violations)
		assert.False(t, report.CheckedAt.IsZero())
	})

	t.Run("consistent configuration is valid", func(t *testing.T) {
		seedAgent(t, agentService, "asst_ok")
		seedChannel(t, channelService, "ch_ok", "+15552000000")
		seedMapping(t, mappingService, "asst_ok", "ch_ok", true)

		report, err := adminService.ValidateAll(ctx)
		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Violations)
	})

	t.Run("orphaned mapping is reported exactly once", func(t *testing.T) {
		seedAgent(t, agentService, "asst_orphaned")
		seedChannel(t, channelService, "ch_orphaned", "+15552000001")
		m := seedMapping(t, mappingService, "asst_orphaned", "ch_orphaned", true)

		// Deactivate the agent out from under the mapping.
		require.NoError(t, agentService.Delete(ctx, "asst_orphaned"))

		report, err := adminService.ValidateAll(ctx)
		require.NoError(t, err)
		assert.False(t, report.Valid)

		var dangling []string
		for _, v := range report.Violations {
			if v.Reason == ReasonDanglingReference {
				dangling = append(dangling, v.ID)
			}
		}
		require.Len(t, dangling, 1)
		assert.Equal(t, m.ID, dangling[0])

		// Cleanup so later subtests see a consistent store.
		require.NoError(t, mappingService.Delete(ctx, m.ID))
	})

	t.Run("soft-deleted mapping does not count as a violation", func(t *testing.T) {
		report, err := adminService.ValidateAll(ctx)
		require.NoError(t, err)
		for _, v := range report.Violations {
			assert.NotEqual(t, ReasonDanglingReference, v.Reason)
		}
	})

	t.Run("unmapped active agent yields a warning", func(t *testing.T) {
		seedAgent(t, agentService, "asst_idle")

		report, err := adminService.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Contains(t, report.Warnings, "agent asst_idle has no active channel mappings")
	})

	t.Run("non-normalized phone written around the service layer is flagged", func(t *testing.T) {
		// Insert directly through the ent client, bypassing the
		// normalizing write path.
		_, err := client.Channel.Create().
			SetID("ch_raw").
			SetChannelName("Raw Import").
			SetChannelType(channel.ChannelTypeSms).
			SetProvider(channel.ProviderInfobip).
			SetPhoneNumber("+1 (555) 200-0099").
			Save(ctx)
		require.NoError(t, err)

		report, err := adminService.ValidateAll(ctx)
		require.NoError(t, err)
		assert.False(t, report.Valid)

		found := false
		for _, v := range report.Violations {
			if v.ID == "ch_raw" && v.Reason == ReasonInvalidFormat {
				found = true
			}
		}
		assert.True(t, found, "expected an invalid_format violation for ch_raw")
	})
}

func TestAdminService_GetStatistics(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	adminService := NewAdminService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_s1")
	seedAgent(t, agentService, "asst_s2")
	require.NoError(t, agentService.Delete(ctx, "asst_s2"))

	seedChannel(t, channelService, "ch_s1", "+15552000010") // whatsapp
	seedMapping(t, mappingService, "asst_s1", "ch_s1", true)

	stats, err := adminService.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAgents)
	assert.Equal(t, 1, stats.ActiveAgents)
	assert.Equal(t, 1, stats.TotalChannels)
	assert.Equal(t, 1, stats.ActiveChannels)
	assert.Equal(t, 1, stats.TotalMappings)
	assert.Equal(t, 1, stats.ActiveMappings)
	assert.Equal(t, 1, stats.WhatsAppChannels)
	assert.Equal(t, 0, stats.SMSChannels)
}
