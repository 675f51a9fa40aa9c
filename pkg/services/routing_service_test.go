package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/multichannel-ai/agentrouter/test/database"
)

func TestRoutingService_ResolveAgentForPhone(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	routingService := NewRoutingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_router")
	seedChannel(t, channelService, "ch_route", "+15551234567")
	m := seedMapping(t, mappingService, "asst_router", "ch_route", true)

	t.Run("resolves formatted number to the primary agent", func(t *testing.T) {
		route, err := routingService.ResolveAgentForPhone(ctx, "+1 555 123 4567")
		require.NoError(t, err)
		assert.Equal(t, "asst_router", route.Agent.ID)
		assert.Equal(t, "ch_route", route.Channel.ID)
		assert.Equal(t, m.ID, route.Mapping.ID)
	})

	t.Run("unknown number yields no_channel", func(t *testing.T) {
		_, err := routingService.ResolveAgentForPhone(ctx, "+19998887777")
		require.Error(t, err)
		var re *RouteNotFoundError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, RouteReasonNoChannel, re.Reason)
	})

	t.Run("malformed number yields validation error", func(t *testing.T) {
		_, err := routingService.ResolveAgentForPhone(ctx, "hello")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("soft-deleted mapping yields no_primary_agent", func(t *testing.T) {
		require.NoError(t, mappingService.Delete(ctx, m.ID))

		_, err := routingService.ResolveAgentForPhone(ctx, "+15551234567")
		require.Error(t, err)
		var re *RouteNotFoundError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, RouteReasonNoPrimaryAgent, re.Reason)
	})

	t.Run("non-primary mapping does not resolve", func(t *testing.T) {
		seedMapping(t, mappingService, "asst_router", "ch_route", false)

		_, err := routingService.ResolveAgentForPhone(ctx, "+15551234567")
		require.Error(t, err)
		var re *RouteNotFoundError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, RouteReasonNoPrimaryAgent, re.Reason)
	})
}

func TestRoutingService_InactiveAgentGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	routingService := NewRoutingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_gone")
	seedChannel(t, channelService, "ch_gone", "+15551234568")
	seedMapping(t, mappingService, "asst_gone", "ch_gone", true)

	// Deactivate the agent underneath its still-active primary mapping.
	require.NoError(t, agentService.Delete(ctx, "asst_gone"))

	_, err := routingService.ResolveAgentForPhone(ctx, "+15551234568")
	require.Error(t, err)
	var re *RouteNotFoundError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, RouteReasonNoPrimaryAgent, re.Reason)
}

func TestRoutingService_SoftDeletedChannel(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	routingService := NewRoutingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_ch")
	seedChannel(t, channelService, "ch_del", "+15551234569")
	seedMapping(t, mappingService, "asst_ch", "ch_del", true)

	require.NoError(t, channelService.Delete(ctx, "ch_del"))

	_, err := routingService.ResolveAgentForPhone(ctx, "+15551234569")
	require.Error(t, err)
	var re *RouteNotFoundError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, RouteReasonNoChannel, re.Reason)
}

func TestRoutingService_MultiplePrimariesTieBreak(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	channelService := NewChannelService(client.Client)
	mappingService := NewMappingService(client.Client)
	routingService := NewRoutingService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_older")
	seedAgent(t, agentService, "asst_newer")
	seedChannel(t, channelService, "ch_tie", "+15551234570")
	seedMapping(t, mappingService, "asst_older", "ch_tie", true)

	// Drop the uniqueness backstop and insert a second active primary
	// directly, simulating a store corrupted through a bypassed write
	// path. The resolver must pick the most recently updated mapping
	// deterministically instead of failing.
	_, err := client.DB().ExecContext(ctx, "DROP INDEX IF EXISTS mapping_channel_id")
	require.NoError(t, err)

	newer, err := client.Mapping.Create().
		SetID("map_newer").
		SetAgentID("asst_newer").
		SetChannelID("ch_tie").
		SetIsPrimary(true).
		SetUpdatedAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	route, err := routingService.ResolveAgentForPhone(ctx, "+15551234570")
	require.NoError(t, err)
	assert.Equal(t, "asst_newer", route.Agent.ID)
	assert.Equal(t, newer.ID, route.Mapping.ID)
}
