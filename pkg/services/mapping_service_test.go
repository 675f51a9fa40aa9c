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

func TestMappingService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_primary")
	seedAgent(t, agentService, "asst_secondary")
	seedChannel(t, channelService, "ch_main", "+15550001000")

	t.Run("creates mapping with server-assigned id", func(t *testing.T) {
		m, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_primary",
			ChannelID: "ch_main",
			IsPrimary: true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.True(t, m.IsPrimary)
		assert.True(t, m.IsActive)
	})

	t.Run("rejects second active primary on the same channel", func(t *testing.T) {
		_, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_secondary",
			ChannelID: "ch_main",
			IsPrimary: true,
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonConflictingPrimary, ve.Reason)
	})

	t.Run("allows non-primary mapping alongside the primary", func(t *testing.T) {
		m, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_secondary",
			ChannelID: "ch_main",
			IsPrimary: false,
		})
		require.NoError(t, err)
		assert.False(t, m.IsPrimary)
	})

	t.Run("rejects unknown agent reference", func(t *testing.T) {
		_, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_ghost",
			ChannelID: "ch_main",
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDanglingReference, ve.Reason)
		assert.Equal(t, "agent_id", ve.Field)
	})

	t.Run("rejects unknown channel reference", func(t *testing.T) {
		_, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_primary",
			ChannelID: "ch_ghost",
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDanglingReference, ve.Reason)
		assert.Equal(t, "channel_id", ve.Field)
	})

	t.Run("rejects inactive agent reference", func(t *testing.T) {
		seedAgent(t, agentService, "asst_retired")
		require.NoError(t, agentService.Delete(ctx, "asst_retired"))

		_, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_retired",
			ChannelID: "ch_main",
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDanglingReference, ve.Reason)
	})

	t.Run("rejects duplicate explicit mapping_id", func(t *testing.T) {
		_, err := mappingService.Create(ctx, models.CreateMappingRequest{
			MappingID: "map_fixed",
			AgentID:   "asst_primary",
			ChannelID: "ch_main",
		})
		require.NoError(t, err)

		_, err = mappingService.Create(ctx, models.CreateMappingRequest{
			MappingID: "map_fixed",
			AgentID:   "asst_secondary",
			ChannelID: "ch_main",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestMappingService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_one")
	seedAgent(t, agentService, "asst_two")
	seedChannel(t, channelService, "ch_upd", "+15550001010")

	primary := seedMapping(t, mappingService, "asst_one", "ch_upd", true)
	secondary := seedMapping(t, mappingService, "asst_two", "ch_upd", false)

	t.Run("promotion is rejected while another primary is active", func(t *testing.T) {
		_, err := mappingService.Update(ctx, secondary.ID, models.UpdateMappingRequest{
			IsPrimary: boolPtr(true),
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonConflictingPrimary, ve.Reason)
	})

	t.Run("demote then promote succeeds", func(t *testing.T) {
		_, err := mappingService.Update(ctx, primary.ID, models.UpdateMappingRequest{
			IsPrimary: boolPtr(false),
		})
		require.NoError(t, err)

		m, err := mappingService.Update(ctx, secondary.ID, models.UpdateMappingRequest{
			IsPrimary: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, m.IsPrimary)
	})

	t.Run("re-saving the current primary is legal", func(t *testing.T) {
		m, err := mappingService.Update(ctx, secondary.ID, models.UpdateMappingRequest{
			IsPrimary: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, m.IsPrimary)
	})

	t.Run("agent rebinding checks the new reference", func(t *testing.T) {
		_, err := mappingService.Update(ctx, secondary.ID, models.UpdateMappingRequest{
			AgentID: strPtr("asst_ghost"),
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDanglingReference, ve.Reason)
	})

	t.Run("update unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := mappingService.Update(ctx, "map_missing", models.UpdateMappingRequest{
			IsPrimary: boolPtr(false),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reactivation re-checks references", func(t *testing.T) {
		seedAgent(t, agentService, "asst_react")
		seedChannel(t, channelService, "ch_react", "+15550001011")
		m := seedMapping(t, mappingService, "asst_react", "ch_react", false)

		// Deactivate the channel, then the mapping itself.
		require.NoError(t, channelService.Delete(ctx, "ch_react"))
		require.NoError(t, mappingService.Delete(ctx, m.ID))

		// Waking the mapping up while its channel is gone must fail the
		// same way create would.
		_, err := mappingService.Update(ctx, m.ID, models.UpdateMappingRequest{
			IsActive: boolPtr(true),
		})
		require.Error(t, err)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, ReasonDanglingReference, ve.Reason)
		assert.Equal(t, "channel_id", ve.Field)

		// Once the channel is back, reactivation goes through.
		_, err = channelService.Update(ctx, "ch_react", models.UpdateChannelRequest{
			IsActive: boolPtr(true),
		})
		require.NoError(t, err)

		got, err := mappingService.Update(ctx, m.ID, models.UpdateMappingRequest{
			IsActive: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, got.IsActive)
	})
}

func TestMappingService_DeleteAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_l1")
	seedAgent(t, agentService, "asst_l2")
	seedChannel(t, channelService, "ch_l1", "+15550001020")
	seedChannel(t, channelService, "ch_l2", "+15550001021")

	m1 := seedMapping(t, mappingService, "asst_l1", "ch_l1", true)
	seedMapping(t, mappingService, "asst_l2", "ch_l2", true)

	t.Run("delete soft-deletes and frees the primary slot", func(t *testing.T) {
		require.NoError(t, mappingService.Delete(ctx, m1.ID))

		got, err := mappingService.Get(ctx, m1.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		// The channel can take a new primary now.
		m, err := mappingService.Create(ctx, models.CreateMappingRequest{
			AgentID:   "asst_l2",
			ChannelID: "ch_l1",
			IsPrimary: true,
		})
		require.NoError(t, err)
		assert.True(t, m.IsPrimary)
	})

	t.Run("filters by agent and channel", func(t *testing.T) {
		byAgent, err := mappingService.List(ctx, models.MappingListParams{AgentID: "asst_l2"})
		require.NoError(t, err)
		assert.Len(t, byAgent, 2)

		byChannel, err := mappingService.List(ctx, models.MappingListParams{ChannelID: "ch_l1"})
		require.NoError(t, err)
		assert.Len(t, byChannel, 2)

		active, err := mappingService.List(ctx, models.MappingListParams{
			ChannelID: "ch_l1",
			IsActive:  boolPtr(true),
		})
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})
}
