package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/multichannel-ai/agentrouter/ent"
	"github.com/multichannel-ai/agentrouter/ent/agent"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/ent/mapping"
	"github.com/multichannel-ai/agentrouter/pkg/models"
)

// MappingService manages agent-channel mapping records.
//
// Primary-conflict policy: marking a mapping primary while the channel
// already has an active primary is rejected with conflicting_primary.
// Callers demote the existing primary explicitly before promoting a new
// one; nothing is demoted implicitly.
type MappingService struct {
	client *ent.Client
}

// NewMappingService creates a new MappingService
func NewMappingService(client *ent.Client) *MappingService {
	return &MappingService{client: client}
}

// Create binds an agent to a channel. Both references must resolve to
// active records. MappingID is server-assigned when empty.
func (s *MappingService) Create(httpCtx context.Context, req models.CreateMappingRequest) (*ent.Mapping, error) {
	mappingID := req.MappingID
	if mappingID == "" {
		mappingID = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	exists, err := tx.Mapping.Query().
		Where(mapping.ID(mappingID)).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to check mapping existence: %w", err))
	}
	if exists {
		return nil, rollback(tx, ErrAlreadyExists)
	}

	if err := s.checkReferences(ctx, tx, req.AgentID, req.ChannelID); err != nil {
		return nil, rollback(tx, err)
	}

	if req.IsPrimary {
		if err := s.checkPrimaryConflict(ctx, tx, req.ChannelID, ""); err != nil {
			return nil, rollback(tx, err)
		}
	}

	created, err := tx.Mapping.Create().
		SetID(mappingID).
		SetAgentID(req.AgentID).
		SetChannelID(req.ChannelID).
		SetIsPrimary(req.IsPrimary).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: the partial unique index on active primaries fired
			return nil, rollback(tx, NewValidationError("is_primary", ReasonConflictingPrimary,
				fmt.Sprintf("channel %s already has an active primary mapping", req.ChannelID)))
		}
		return nil, rollback(tx, fmt.Errorf("failed to create mapping: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit mapping creation: %w", err)
	}
	return created, nil
}

// Get returns a mapping by id.
func (s *MappingService) Get(httpCtx context.Context, mappingID string) (*ent.Mapping, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	m, err := s.client.Mapping.Get(ctx, mappingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return m, nil
}

// Update applies a partial update to a mapping. The channel binding is
// immutable; rebinding is a delete plus create.
func (s *MappingService) Update(httpCtx context.Context, mappingID string, req models.UpdateMappingRequest) (*ent.Mapping, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	cur, err := tx.Mapping.Get(ctx, mappingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("failed to get mapping: %w", err))
	}

	upd := tx.Mapping.UpdateOneID(mappingID)

	effAgent := cur.AgentID
	if req.AgentID != nil {
		effAgent = *req.AgentID
		upd.SetAgentID(*req.AgentID)
	}
	effPrimary := cur.IsPrimary
	if req.IsPrimary != nil {
		effPrimary = *req.IsPrimary
		upd.SetIsPrimary(*req.IsPrimary)
	}
	effActive := cur.IsActive
	if req.IsActive != nil {
		effActive = *req.IsActive
		upd.SetIsActive(*req.IsActive)
	}

	// Rebinding the agent or reactivating the mapping must land on
	// active records, same as create. A soft-deleted mapping may have
	// outlived either end of its binding.
	if req.AgentID != nil || (effActive && !cur.IsActive) {
		if err := s.checkReferences(ctx, tx, effAgent, cur.ChannelID); err != nil {
			return nil, rollback(tx, err)
		}
	}

	if effPrimary && effActive {
		if err := s.checkPrimaryConflict(ctx, tx, cur.ChannelID, mappingID); err != nil {
			return nil, rollback(tx, err)
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, rollback(tx, NewValidationError("is_primary", ReasonConflictingPrimary,
				fmt.Sprintf("channel %s already has an active primary mapping", cur.ChannelID)))
		}
		return nil, rollback(tx, fmt.Errorf("failed to update mapping: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit mapping update: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a mapping by clearing is_active.
func (s *MappingService) Delete(httpCtx context.Context, mappingID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	_, err := s.client.Mapping.UpdateOneID(mappingID).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return nil
}

// List returns mappings, optionally filtered by agent, channel, and is_active.
func (s *MappingService) List(httpCtx context.Context, params models.MappingListParams) ([]*ent.Mapping, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	q := s.client.Mapping.Query()
	if params.AgentID != "" {
		q = q.Where(mapping.AgentID(params.AgentID))
	}
	if params.ChannelID != "" {
		q = q.Where(mapping.ChannelID(params.ChannelID))
	}
	if params.IsActive != nil {
		q = q.Where(mapping.IsActiveEQ(*params.IsActive))
	}

	mappings, err := q.Order(ent.Asc(mapping.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return mappings, nil
}

// checkReferences verifies both ends of a mapping resolve to ACTIVE records.
func (s *MappingService) checkReferences(ctx context.Context, tx *ent.Tx, agentID, channelID string) error {
	agentOK, err := tx.Agent.Query().
		Where(agent.ID(agentID), agent.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check agent reference: %w", err)
	}
	if !agentOK {
		return NewValidationError("agent_id", ReasonDanglingReference,
			fmt.Sprintf("agent %s does not exist or is inactive", agentID))
	}

	channelOK, err := tx.Channel.Query().
		Where(channel.ID(channelID), channel.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check channel reference: %w", err)
	}
	if !channelOK {
		return NewValidationError("channel_id", ReasonDanglingReference,
			fmt.Sprintf("channel %s does not exist or is inactive", channelID))
	}
	return nil
}

// checkPrimaryConflict rejects a promotion when the channel already has
// another active primary mapping. excludeID skips the mapping being
// updated so re-saving an existing primary stays legal.
func (s *MappingService) checkPrimaryConflict(ctx context.Context, tx *ent.Tx, channelID, excludeID string) error {
	q := tx.Mapping.Query().
		Where(
			mapping.ChannelID(channelID),
			mapping.IsPrimary(true),
			mapping.IsActive(true),
		)
	if excludeID != "" {
		q = q.Where(mapping.IDNEQ(excludeID))
	}

	conflict, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check primary conflict: %w", err)
	}
	if conflict {
		return NewValidationError("is_primary", ReasonConflictingPrimary,
			fmt.Sprintf("channel %s already has an active primary mapping", channelID))
	}
	return nil
}
