package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/multichannel-ai/agentrouter/ent"
	"github.com/multichannel-ai/agentrouter/ent/agent"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/ent/mapping"
	"github.com/multichannel-ai/agentrouter/pkg/phone"
)

// RoutingService resolves inbound phone numbers to their active primary
// agent. It holds no state of its own and always re-reads committed
// configuration, so routing reflects the latest admin changes.
type RoutingService struct {
	client *ent.Client
}

// NewRoutingService creates a new RoutingService
func NewRoutingService(client *ent.Client) *RoutingService {
	return &RoutingService{client: client}
}

// ResolvedRoute is the outcome of a successful resolution.
type ResolvedRoute struct {
	Agent   *ent.Agent
	Channel *ent.Channel
	Mapping *ent.Mapping
}

// ResolveAgentForPhone resolves a destination phone number to the agent
// behind its active primary mapping. The input is normalized to E.164
// first. No-match outcomes come back as *RouteNotFoundError with reason
// no_channel or no_primary_agent; the caller owns any fallback.
func (s *RoutingService) ResolveAgentForPhone(httpCtx context.Context, rawPhone string) (*ResolvedRoute, error) {
	normPhone, err := phone.Normalize(rawPhone)
	if err != nil {
		return nil, NewValidationError("phone_number", ReasonInvalidFormat, err.Error())
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	ch, err := s.client.Channel.Query().
		Where(channel.PhoneNumber(normPhone), channel.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &RouteNotFoundError{PhoneNumber: normPhone, Reason: RouteReasonNoChannel}
		}
		return nil, fmt.Errorf("failed to look up channel for %s: %w", normPhone, err)
	}

	// The partial unique index allows at most one active primary per
	// channel, but a bypassed write path could leave more than one.
	// Resolve deterministically: most recently updated wins.
	primaries, err := s.client.Mapping.Query().
		Where(
			mapping.ChannelID(ch.ID),
			mapping.IsPrimary(true),
			mapping.IsActive(true),
		).
		Order(ent.Desc(mapping.FieldUpdatedAt), ent.Asc(mapping.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up primary mapping for channel %s: %w", ch.ID, err)
	}
	if len(primaries) == 0 {
		return nil, &RouteNotFoundError{PhoneNumber: normPhone, Reason: RouteReasonNoPrimaryAgent}
	}
	if len(primaries) > 1 {
		slog.Warn("Configuration anomaly: multiple active primary mappings for channel",
			"channel_id", ch.ID,
			"count", len(primaries),
			"selected_mapping_id", primaries[0].ID)
	}
	m := primaries[0]

	ag, err := s.client.Agent.Query().
		Where(agent.ID(m.AgentID), agent.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Write-time validation should have prevented this; never
			// route to a missing or soft-deleted agent.
			slog.Error("Configuration anomaly: active primary mapping references missing or inactive agent",
				"mapping_id", m.ID,
				"agent_id", m.AgentID,
				"channel_id", ch.ID)
			return nil, &RouteNotFoundError{PhoneNumber: normPhone, Reason: RouteReasonNoPrimaryAgent}
		}
		return nil, fmt.Errorf("failed to look up agent %s: %w", m.AgentID, err)
	}

	return &ResolvedRoute{Agent: ag, Channel: ch, Mapping: m}, nil
}
