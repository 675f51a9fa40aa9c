package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/multichannel-ai/agentrouter/ent"
	"github.com/multichannel-ai/agentrouter/ent/channel"
	"github.com/multichannel-ai/agentrouter/pkg/models"
	"github.com/multichannel-ai/agentrouter/pkg/phone"
)

// ChannelService manages messaging channel configuration records
type ChannelService struct {
	client *ent.Client
}

// NewChannelService creates a new ChannelService
func NewChannelService(client *ent.Client) *ChannelService {
	return &ChannelService{client: client}
}

// Create registers a new channel. The phone number is normalized to
// E.164 before the active-uniqueness check, so "+1 (234) 567-8900" and
// "+12345678900" collide.
func (s *ChannelService) Create(httpCtx context.Context, req models.CreateChannelRequest) (*ent.Channel, error) {
	chType, err := parseChannelType(req.ChannelType)
	if err != nil {
		return nil, err
	}
	provider, err := parseProvider(req.Provider)
	if err != nil {
		return nil, err
	}
	normPhone, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, NewValidationError("phone_number", ReasonInvalidFormat, err.Error())
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	exists, err := tx.Channel.Query().
		Where(channel.ID(req.ChannelID)).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to check channel existence: %w", err))
	}
	if exists {
		return nil, rollback(tx, ErrAlreadyExists)
	}

	phoneTaken, err := tx.Channel.Query().
		Where(channel.PhoneNumber(normPhone), channel.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to check phone uniqueness: %w", err))
	}
	if phoneTaken {
		return nil, rollback(tx, NewValidationError("phone_number", ReasonDuplicatePhoneNumber,
			fmt.Sprintf("phone number %s is already bound to an active channel", normPhone)))
	}

	created, err := tx.Channel.Create().
		SetID(req.ChannelID).
		SetChannelName(req.ChannelName).
		SetChannelType(chType).
		SetProvider(provider).
		SetPhoneNumber(normPhone).
		SetBusinessName(req.BusinessName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: the partial unique index on active phone numbers fired
			return nil, rollback(tx, NewValidationError("phone_number", ReasonDuplicatePhoneNumber,
				fmt.Sprintf("phone number %s is already bound to an active channel", normPhone)))
		}
		return nil, rollback(tx, fmt.Errorf("failed to create channel: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit channel creation: %w", err)
	}
	return created, nil
}

// Get returns a channel by id.
func (s *ChannelService) Get(httpCtx context.Context, channelID string) (*ent.Channel, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	ch, err := s.client.Channel.Get(ctx, channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// GetByPhone returns the active channel bound to a phone number.
func (s *ChannelService) GetByPhone(httpCtx context.Context, rawPhone string) (*ent.Channel, error) {
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
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel by phone: %w", err)
	}
	return ch, nil
}

// Update applies a partial update to a channel. The id is immutable.
// Phone and activation changes re-run the active-uniqueness check
// against the effective post-update state.
func (s *ChannelService) Update(httpCtx context.Context, channelID string, req models.UpdateChannelRequest) (*ent.Channel, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	cur, err := tx.Channel.Get(ctx, channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("failed to get channel: %w", err))
	}

	upd := tx.Channel.UpdateOneID(channelID)

	if req.ChannelName != nil {
		upd.SetChannelName(*req.ChannelName)
	}
	if req.BusinessName != nil {
		upd.SetBusinessName(*req.BusinessName)
	}
	if req.ChannelType != nil {
		chType, err := parseChannelType(*req.ChannelType)
		if err != nil {
			return nil, rollback(tx, err)
		}
		upd.SetChannelType(chType)
	}
	if req.Provider != nil {
		provider, err := parseProvider(*req.Provider)
		if err != nil {
			return nil, rollback(tx, err)
		}
		upd.SetProvider(provider)
	}

	effPhone := cur.PhoneNumber
	if req.PhoneNumber != nil {
		normPhone, err := phone.Normalize(*req.PhoneNumber)
		if err != nil {
			return nil, rollback(tx, NewValidationError("phone_number", ReasonInvalidFormat, err.Error()))
		}
		effPhone = normPhone
		upd.SetPhoneNumber(normPhone)
	}

	effActive := cur.IsActive
	if req.IsActive != nil {
		effActive = *req.IsActive
		upd.SetIsActive(*req.IsActive)
	}

	if effActive {
		phoneTaken, err := tx.Channel.Query().
			Where(
				channel.PhoneNumber(effPhone),
				channel.IsActive(true),
				channel.IDNEQ(channelID),
			).
			Exist(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("failed to check phone uniqueness: %w", err))
		}
		if phoneTaken {
			return nil, rollback(tx, NewValidationError("phone_number", ReasonDuplicatePhoneNumber,
				fmt.Sprintf("phone number %s is already bound to an active channel", effPhone)))
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, rollback(tx, NewValidationError("phone_number", ReasonDuplicatePhoneNumber,
				fmt.Sprintf("phone number %s is already bound to an active channel", effPhone)))
		}
		return nil, rollback(tx, fmt.Errorf("failed to update channel: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit channel update: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a channel by clearing is_active. The phone number
// becomes reusable by a new active channel; mappings stay in place.
func (s *ChannelService) Delete(httpCtx context.Context, channelID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	_, err := s.client.Channel.UpdateOneID(channelID).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}

// List returns channels, optionally filtered by type and is_active.
func (s *ChannelService) List(httpCtx context.Context, params models.ChannelListParams) ([]*ent.Channel, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	q := s.client.Channel.Query()
	if params.ChannelType != "" {
		chType, err := parseChannelType(params.ChannelType)
		if err != nil {
			return nil, err
		}
		q = q.Where(channel.ChannelTypeEQ(chType))
	}
	if params.IsActive != nil {
		q = q.Where(channel.IsActiveEQ(*params.IsActive))
	}

	channels, err := q.Order(ent.Asc(channel.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

func parseChannelType(v string) (channel.ChannelType, error) {
	chType := channel.ChannelType(strings.ToLower(v))
	if err := channel.ChannelTypeValidator(chType); err != nil {
		return "", NewValidationError("channel_type", ReasonInvalidFormat,
			fmt.Sprintf("channel type %q must be whatsapp or sms", v))
	}
	return chType, nil
}

func parseProvider(v string) (channel.Provider, error) {
	provider := channel.Provider(strings.ToLower(v))
	if err := channel.ProviderValidator(provider); err != nil {
		return "", NewValidationError("provider", ReasonInvalidFormat,
			fmt.Sprintf("provider %q must be infobip or acs", v))
	}
	return provider, nil
}
