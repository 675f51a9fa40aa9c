package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multichannel-ai/agentrouter/pkg/models"
	testdb "github.com/multichannel-ai/agentrouter/test/database"
)

func TestAgentService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("creates agent successfully", func(t *testing.T) {
		ag, err := agentService.Create(ctx, models.CreateAgentRequest{
			AgentID:         "asst_sales_01",
			AgentName:       "Sales Assistant",
			FoundryEndpoint: "https://foundry.example.com/api/projects/sales",
			Description:     "Handles sales inquiries",
		})
		require.NoError(t, err)
		assert.Equal(t, "asst_sales_01", ag.ID)
		assert.Equal(t, "Sales Assistant", ag.AgentName)
		assert.True(t, ag.IsActive)
		assert.False(t, ag.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate agent_id", func(t *testing.T) {
		seedAgent(t, agentService, "asst_dup")

		_, err := agentService.Create(ctx, models.CreateAgentRequest{
			AgentID:         "asst_dup",
			AgentName:       "Another Name",
			FoundryEndpoint: "https://foundry.example.com/api/projects/other",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects id without prefix", func(t *testing.T) {
		_, err := agentService.Create(ctx, models.CreateAgentRequest{
			AgentID:         "sales_01",
			AgentName:       "Sales",
			FoundryEndpoint: "https://foundry.example.com",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects bare prefix", func(t *testing.T) {
		_, err := agentService.Create(ctx, models.CreateAgentRequest{
			AgentID:         "asst_",
			AgentName:       "Sales",
			FoundryEndpoint: "https://foundry.example.com",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		_, err := agentService.Create(ctx, models.CreateAgentRequest{
			AgentID:         "asst_sales 01",
			AgentName:       "Sales",
			FoundryEndpoint: "https://foundry.example.com",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_GetUpdateDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_support")

	t.Run("get returns created agent", func(t *testing.T) {
		ag, err := agentService.Get(ctx, "asst_support")
		require.NoError(t, err)
		assert.Equal(t, "asst_support", ag.ID)
	})

	t.Run("get unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := agentService.Get(ctx, "asst_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		ag, err := agentService.Update(ctx, "asst_support", models.UpdateAgentRequest{
			AgentName: strPtr("Renamed Support"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Support", ag.AgentName)
		assert.Equal(t, "https://foundry.example.com/api/projects/test", ag.FoundryEndpoint)
		assert.True(t, ag.IsActive)
	})

	t.Run("update unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := agentService.Update(ctx, "asst_missing", models.UpdateAgentRequest{
			AgentName: strPtr("x"),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete soft-deletes", func(t *testing.T) {
		err := agentService.Delete(ctx, "asst_support")
		require.NoError(t, err)

		ag, err := agentService.Get(ctx, "asst_support")
		require.NoError(t, err)
		assert.False(t, ag.IsActive)
	})

	t.Run("delete unknown id returns ErrNotFound", func(t *testing.T) {
		err := agentService.Delete(ctx, "asst_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	agentService := NewAgentService(client.Client)
	ctx := context.Background()

	seedAgent(t, agentService, "asst_a")
	seedAgent(t, agentService, "asst_b")
	require.NoError(t, agentService.Delete(ctx, "asst_b"))

	t.Run("lists all agents ordered by id", func(t *testing.T) {
		agents, err := agentService.List(ctx, models.AgentListParams{})
		require.NoError(t, err)
		require.Len(t, agents, 2)
		assert.Equal(t, "asst_a", agents[0].ID)
		assert.Equal(t, "asst_b", agents[1].ID)
	})

	t.Run("filters by is_active", func(t *testing.T) {
		agents, err := agentService.List(ctx, models.AgentListParams{IsActive: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, agents, 1)
		assert.Equal(t, "asst_a", agents[0].ID)
	})
}
