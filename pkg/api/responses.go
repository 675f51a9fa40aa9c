package api

import (
	"time"

	"github.com/multichannel-ai/agentrouter/ent"
)

// AgentResponse mirrors the agent record attributes on the wire.
type AgentResponse struct {
	AgentID         string    `json:"agent_id"`
	AgentName       string    `json:"agent_name"`
	FoundryEndpoint string    `json:"foundry_endpoint"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newAgentResponse(a *ent.Agent) AgentResponse {
	return AgentResponse{
		AgentID:         a.ID,
		AgentName:       a.AgentName,
		FoundryEndpoint: a.FoundryEndpoint,
		Description:     a.Description,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func newAgentListResponse(agents []*ent.Agent) []AgentResponse {
	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, newAgentResponse(a))
	}
	return out
}

// ChannelResponse mirrors the channel record attributes on the wire.
type ChannelResponse struct {
	ChannelID    string    `json:"channel_id"`
	ChannelName  string    `json:"channel_name"`
	ChannelType  string    `json:"channel_type"`
	Provider     string    `json:"provider"`
	PhoneNumber  string    `json:"phone_number"`
	BusinessName string    `json:"business_name,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newChannelResponse(c *ent.Channel) ChannelResponse {
	return ChannelResponse{
		ChannelID:    c.ID,
		ChannelName:  c.ChannelName,
		ChannelType:  string(c.ChannelType),
		Provider:     string(c.Provider),
		PhoneNumber:  c.PhoneNumber,
		BusinessName: c.BusinessName,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func newChannelListResponse(channels []*ent.Channel) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(channels))
	for _, c := range channels {
		out = append(out, newChannelResponse(c))
	}
	return out
}

// MappingResponse mirrors the mapping record attributes on the wire.
type MappingResponse struct {
	MappingID string    `json:"mapping_id"`
	AgentID   string    `json:"agent_id"`
	ChannelID string    `json:"channel_id"`
	IsPrimary bool      `json:"is_primary"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newMappingResponse(m *ent.Mapping) MappingResponse {
	return MappingResponse{
		MappingID: m.ID,
		AgentID:   m.AgentID,
		ChannelID: m.ChannelID,
		IsPrimary: m.IsPrimary,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newMappingListResponse(mappings []*ent.Mapping) []MappingResponse {
	out := make([]MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, newMappingResponse(m))
	}
	return out
}

// RouteResponse is a successful phone-to-agent resolution.
type RouteResponse struct {
	Agent     AgentResponse   `json:"agent"`
	Channel   ChannelResponse `json:"channel"`
	MappingID string          `json:"mapping_id"`
}
