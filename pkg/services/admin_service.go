package services

import (
	"context"
	"fmt"
	"time"

	"github.com/multichannel-ai/agentrouter/ent"
	"github.com/multichannel-ai/agentrouter/ent/agent"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/ent/mapping"
	"github.com/multichannel-ai/agentrouter/pkg/models"
	"github.com/multichannel-ai/agentrouter/pkg/phone"
)

// AdminService provides the administrative health view: a full
// consistency sweep over all active records and non-authoritative
// statistics.
type AdminService struct {
	client *ent.Client
}

// NewAdminService creates a new AdminService
func NewAdminService(client *ent.Client) *AdminService {
	return &AdminService{client: client}
}

// ValidateAll sweeps all active records and collects every invariant
// violation found, rather than failing fast. The report feeds an
// administrative health check.
func (s *AdminService) ValidateAll(httpCtx context.Context) (*models.ValidationReport, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	agents, err := s.client.Agent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}
	channels, err := s.client.Channel.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load channels: %w", err)
	}
	mappings, err := s.client.Mapping.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	activeAgents := make(map[string]bool, len(agents))
	for _, a := range agents {
		if a.IsActive {
			activeAgents[a.ID] = true
		}
	}
	activeChannels := make(map[string]bool, len(channels))
	for _, c := range channels {
		if c.IsActive {
			activeChannels[c.ID] = true
		}
	}

	report := &models.ValidationReport{
		Violations: []models.Violation{},
		Warnings:   []string{},
		CheckedAt:  time.Now().UTC(),
	}

	// Referential integrity: active mappings must point at active records.
	agentHasMapping := make(map[string]bool)
	primariesPerChannel := make(map[string]int)
	for _, m := range mappings {
		if !m.IsActive {
			continue
		}
		if !activeAgents[m.AgentID] {
			report.Violations = append(report.Violations, models.Violation{
				Component: "mapping",
				ID:        m.ID,
				Field:     "agent_id",
				Reason:    ReasonDanglingReference,
				Message:   fmt.Sprintf("mapping %s references missing or inactive agent %s", m.ID, m.AgentID),
			})
		} else {
			agentHasMapping[m.AgentID] = true
		}
		if !activeChannels[m.ChannelID] {
			report.Violations = append(report.Violations, models.Violation{
				Component: "mapping",
				ID:        m.ID,
				Field:     "channel_id",
				Reason:    ReasonDanglingReference,
				Message:   fmt.Sprintf("mapping %s references missing or inactive channel %s", m.ID, m.ChannelID),
			})
		}
		if m.IsPrimary {
			primariesPerChannel[m.ChannelID]++
		}
	}

	// Phone format and uniqueness among active channels. The write path
	// normalizes before storing; a non-normalized number means the row
	// was written around the service layer.
	phoneOwners := make(map[string]string, len(channels))
	for _, c := range channels {
		if !c.IsActive {
			continue
		}
		if !phone.IsNormalized(c.PhoneNumber) {
			report.Violations = append(report.Violations, models.Violation{
				Component: "channel",
				ID:        c.ID,
				Field:     "phone_number",
				Reason:    ReasonInvalidFormat,
				Message:   fmt.Sprintf("phone number %q is not in normalized E.164 form", c.PhoneNumber),
			})
		}
		if owner, dup := phoneOwners[c.PhoneNumber]; dup {
			report.Violations = append(report.Violations, models.Violation{
				Component: "channel",
				ID:        c.ID,
				Field:     "phone_number",
				Reason:    ReasonDuplicatePhoneNumber,
				Message:   fmt.Sprintf("phone number %s is bound to both %s and %s", c.PhoneNumber, owner, c.ID),
			})
		} else {
			phoneOwners[c.PhoneNumber] = c.ID
		}
	}

	// Primary uniqueness per channel.
	for channelID, count := range primariesPerChannel {
		if count > 1 {
			report.Violations = append(report.Violations, models.Violation{
				Component: "channel",
				ID:        channelID,
				Field:     "is_primary",
				Reason:    ReasonConflictingPrimary,
				Message:   fmt.Sprintf("channel %s has %d active primary mappings", channelID, count),
			})
		}
	}

	// Unrouted agents are legal but worth surfacing.
	for _, a := range agents {
		if a.IsActive && !agentHasMapping[a.ID] {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("agent %s has no active channel mappings", a.ID))
		}
	}

	report.Valid = len(report.Violations) == 0
	return report, nil
}

// GetStatistics returns record counts by type and category. The counts
// are read without locking and are for observability only.
func (s *AdminService) GetStatistics(httpCtx context.Context) (*models.Statistics, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	stats := &models.Statistics{}
	var err error

	if stats.TotalAgents, err = s.client.Agent.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}
	if stats.ActiveAgents, err = s.client.Agent.Query().Where(agent.IsActive(true)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count active agents: %w", err)
	}
	if stats.TotalChannels, err = s.client.Channel.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count channels: %w", err)
	}
	if stats.ActiveChannels, err = s.client.Channel.Query().Where(channel.IsActive(true)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count active channels: %w", err)
	}
	if stats.TotalMappings, err = s.client.Mapping.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count mappings: %w", err)
	}
	if stats.ActiveMappings, err = s.client.Mapping.Query().Where(mapping.IsActive(true)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count active mappings: %w", err)
	}
	if stats.WhatsAppChannels, err = s.client.Channel.Query().
		Where(channel.ChannelTypeEQ(channel.ChannelTypeWhatsapp)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count whatsapp channels: %w", err)
	}
	if stats.SMSChannels, err = s.client.Channel.Query().
		Where(channel.ChannelTypeEQ(channel.ChannelTypeSms)).Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count sms channels: %w", err)
	}

	return stats, nil
}
