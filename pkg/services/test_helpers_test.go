package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multichannel-ai/agentrouter/ent"
	"github.com/multichannel-ai/agentrouter/pkg/models"
)

// seedAgent creates an active agent with placeholder metadata.
func seedAgent(t *testing.T, svc *AgentService, agentID string) *ent.Agent {
	t.Helper()
	ag, err := svc.Create(context.Background(), models.CreateAgentRequest{
		AgentID:         agentID,
		AgentName:       "Test Agent " + agentID,
		FoundryEndpoint: "https://foundry.example.com/api/projects/test",
	})
	require.NoError(t, err)
	return ag
}

// seedChannel creates an active whatsapp channel on the given phone number.
func seedChannel(t *testing.T, svc *ChannelService, channelID, phoneNumber string) *ent.Channel {
	t.Helper()
	ch, err := svc.Create(context.Background(), models.CreateChannelRequest{
		ChannelID:    channelID,
		ChannelName:  "Test Channel " + channelID,
		ChannelType:  "whatsapp",
		Provider:     "acs",
		PhoneNumber:  phoneNumber,
		BusinessName: "Test Business",
	})
	require.NoError(t, err)
	return ch
}

// seedMapping binds an agent to a channel.
func seedMapping(t *testing.T, svc *MappingService, agentID, channelID string, isPrimary bool) *ent.Mapping {
	t.Helper()
	m, err := svc.Create(context.Background(), models.CreateMappingRequest{
		AgentID:   agentID,
		ChannelID: channelID,
		IsPrimary: isPrimary,
	})
	require.NoError(t, err)
	return m
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
