package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/multichannel-ai/agentrouter/ent"
	"github.com/multichannel-ai/agentrouter/ent/agent"
	"github.com/multichannel-ai/agentrouter/pkg/models"
)

// agentIDPrefix is the identifier prefix the upstream agent platform
// assigns to assistants.
const agentIDPrefix = "asst_"

// AgentService manages AI agent configuration records
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Create registers a new agent. Fails with ErrAlreadyExists when the
// agent_id is taken and with a validation error on a malformed id.
func (s *AgentService) Create(httpCtx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	if err := validateAgentID(req.AgentID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	exists, err := tx.Agent.Query().
		Where(agent.ID(req.AgentID)).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to check agent existence: %w", err))
	}
	if exists {
		return nil, rollback(tx, ErrAlreadyExists)
	}

	created, err := tx.Agent.Create().
		SetID(req.AgentID).
		SetAgentName(req.AgentName).
		SetFoundryEndpoint(req.FoundryEndpoint).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: another transaction created the same id first
			return nil, rollback(tx, ErrAlreadyExists)
		}
		return nil, rollback(tx, fmt.Errorf("failed to create agent: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agent creation: %w", err)
	}
	return created, nil
}

// Get returns an agent by id.
func (s *AgentService) Get(httpCtx context.Context, agentID string) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	ag, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return ag, nil
}

// Update applies a partial update to an agent. The id is immutable.
func (s *AgentService) Update(httpCtx context.Context, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.Agent.Get(ctx, agentID); err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("failed to get agent: %w", err))
	}

	upd := tx.Agent.UpdateOneID(agentID)
	if req.AgentName != nil {
		upd.SetAgentName(*req.AgentName)
	}
	if req.FoundryEndpoint != nil {
		upd.SetFoundryEndpoint(*req.FoundryEndpoint)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.IsActive != nil {
		upd.SetIsActive(*req.IsActive)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to update agent: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agent update: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes an agent by clearing is_active. Mapping history is
// preserved; routing stops resolving to the agent immediately.
func (s *AgentService) Delete(httpCtx context.Context, agentID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	_, err := s.client.Agent.UpdateOneID(agentID).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// List returns agents, optionally filtered by is_active, ordered by id
// for a stable, restartable listing.
func (s *AgentService) List(httpCtx context.Context, params models.AgentListParams) ([]*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	q := s.client.Agent.Query()
	if params.IsActive != nil {
		q = q.Where(agent.IsActiveEQ(*params.IsActive))
	}

	agents, err := q.Order(ent.Asc(agent.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// validateAgentID checks the upstream platform identifier pattern:
// "asst_" followed by at least one [A-Za-z0-9_-] character.
func validateAgentID(id string) error {
	rest, ok := strings.CutPrefix(id, agentIDPrefix)
	if !ok || rest == "" {
		return NewValidationError("agent_id", ReasonInvalidFormat,
			fmt.Sprintf("agent id %q must match %s<identifier>", id, agentIDPrefix))
	}
	for _, r := range rest {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return NewValidationError("agent_id", ReasonInvalidFormat,
				fmt.Sprintf("agent id %q contains invalid character %q", id, r))
		}
	}
	return nil
}
