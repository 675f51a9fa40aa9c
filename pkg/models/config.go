// Package models contains request and report types shared between the
// service layer and the HTTP API.
package models

// CreateAgentRequest is the payload for registering an AI agent.
type CreateAgentRequest struct {
	AgentID         string `json:"agent_id" binding:"required"`
	AgentName       string `json:"agent_name" binding:"required"`
	FoundryEndpoint string `json:"foundry_endpoint" binding:"required"`
	Description     string `json:"description"`
}

// UpdateAgentRequest carries a partial agent update. Nil fields are
// left untouched; agent_id is immutable.
type UpdateAgentRequest struct {
	AgentName       *string `json:"agent_name"`
	FoundryEndpoint *string `json:"foundry_endpoint"`
	Description     *string `json:"description"`
	IsActive        *bool   `json:"is_active"`
}

// CreateChannelRequest is the payload for registering a messaging channel.
type CreateChannelRequest struct {
	ChannelID    string `json:"channel_id" binding:"required"`
	ChannelName  string `json:"channel_name" binding:"required"`
	ChannelType  string `json:"channel_type" binding:"required"`
	Provider     string `json:"provider" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	BusinessName string `json:"business_name"`
}

// UpdateChannelRequest carries a partial channel update. Nil fields are
// left untouched; channel_id is immutable.
type UpdateChannelRequest struct {
	ChannelName  *string `json:"channel_name"`
	ChannelType  *string `json:"channel_type"`
	Provider     *string `json:"provider"`
	PhoneNumber  *string `json:"phone_number"`
	BusinessName *string `json:"business_name"`
	IsActive     *bool   `json:"is_active"`
}

// CreateMappingRequest binds an agent to a channel. MappingID is
// server-assigned when empty.
type CreateMappingRequest struct {
	MappingID string `json:"mapping_id"`
	AgentID   string `json:"agent_id" binding:"required"`
	ChannelID string `json:"channel_id" binding:"required"`
	IsPrimary bool   `json:"is_primary"`
}

// UpdateMappingRequest carries a partial mapping update. The channel
// binding is immutable; rebinding a channel is a delete plus create.
type UpdateMappingRequest struct {
	AgentID   *string `json:"agent_id"`
	IsPrimary *bool   `json:"is_primary"`
	IsActive  *bool   `json:"is_active"`
}

// AgentListParams filters agent listings.
type AgentListParams struct {
	IsActive *bool
}

// ChannelListParams filters channel listings.
type ChannelListParams struct {
	ChannelType string
	IsActive    *bool
}

// MappingListParams filters mapping listings.
type MappingListParams struct {
	AgentID   string
	ChannelID string
	IsActive  *bool
}
