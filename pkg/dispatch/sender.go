package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ChannelSender sends one message through one channel registration.
type ChannelSender interface {
	Send(ctx context.Context, channelRegistrationID, to, text string) (*SendResult, error)
}

// FallbackSender tries channel registrations in order and returns on
// the first success. It is a plain ordered walk, not a state machine:
// each attempt either delivers or yields to the next channel.
type FallbackSender struct {
	sender ChannelSender
}

// NewFallbackSender creates a FallbackSender over the given sender.
func NewFallbackSender(sender ChannelSender) *FallbackSender {
	return &FallbackSender{sender: sender}
}

// Send attempts delivery through each channel registration in order.
// Returns the first successful result, or an error joining every
// attempt's failure once the list is exhausted.
func (f *FallbackSender) Send(ctx context.Context, to, text string, channelRegistrationIDs []string) (*SendResult, error) {
	if len(channelRegistrationIDs) == 0 {
		return nil, errors.New("no channel registrations to send through")
	}

	var attempts []error
	for _, id := range channelRegistrationIDs {
		result, err := f.sender.Send(ctx, id, to, text)
		if err == nil {
			return result, nil
		}
		slog.Warn("Channel send failed, trying next in chain",
			"channel_registration_id", id, "error", err)
		attempts = append(attempts, fmt.Errorf("channel %s: %w", id, err))

		if ctx.Err() != nil {
			attempts = append(attempts, ctx.Err())
			break
		}
	}

	return nil, fmt.Errorf("all %d channel attempts failed: %w",
		len(attempts), errors.Join(attempts...))
}
