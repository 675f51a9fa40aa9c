// Package dispatch sends outbound messages through the Azure
// Communication Services Messaging Connect REST API, with ordered
// channel fallback for callers that hold more than one channel
// registration.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/multichannel-ai/agentrouter/pkg/version"
)

const (
	messagingAPIPath = "/messaging/connect/v1"
	requestTimeout   = 30 * time.Second
	maxResponseBytes = 1 << 20
)

// TokenProvider supplies bearer tokens for the Messaging Connect API.
// Credential acquisition (managed identity, service principal) is the
// deployment's concern, not this package's.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider returns a fixed token. Useful for tests and for
// deployments that refresh tokens out of band.
type StaticTokenProvider string

// Token implements TokenProvider.
func (p StaticTokenProvider) Token(context.Context) (string, error) {
	return string(p), nil
}

// Client calls the Messaging Connect send endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	tokens     TokenProvider
}

// NewClient creates a Messaging Connect client for the given ACS
// resource endpoint (e.g. "https://myacs.communication.azure.com").
func NewClient(acsEndpoint string, tokens TokenProvider) *Client {
	return &Client{
		endpoint:   strings.TrimRight(acsEndpoint, "/") + messagingAPIPath,
		httpClient: &http.Client{Timeout: requestTimeout},
		tokens:     tokens,
	}
}

// SendResult reports an accepted outbound message.
type SendResult struct {
	MessageID             string `json:"message_id"`
	Status                string `json:"status"`
	ChannelRegistrationID string `json:"channel_registration_id"`
}

// SendError is a non-202 response from the Messaging Connect API.
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("messaging connect send failed: HTTP %d: %s", e.StatusCode, e.Body)
}

type sendPayload struct {
	ChannelRegistrationID string         `json:"channelRegistrationId"`
	To                    []recipient    `json:"to"`
	Content               messageContent `json:"content"`
}

type recipient struct {
	PhoneNumber string `json:"phoneNumber"`
}

type messageContent struct {
	Text string `json:"text"`
}

// Send delivers one text message to one recipient through the given
// channel registration. ACS answers 202 Accepted on success, sometimes
// with an empty body.
func (c *Client) Send(ctx context.Context, channelRegistrationID, to, text string) (*SendResult, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire token: %w", err)
	}

	payload, err := json.Marshal(sendPayload{
		ChannelRegistrationID: channelRegistrationID,
		To:                    []recipient{{PhoneNumber: to}},
		Content:               messageContent{Text: text},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Full())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusAccepted {
		return nil, &SendError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	result := &SendResult{
		MessageID:             "pending",
		Status:                "accepted",
		ChannelRegistrationID: channelRegistrationID,
	}
	if len(body) > 0 {
		var accepted struct {
			MessageID string `json:"messageId"`
		}
		if err := json.Unmarshal(body, &accepted); err == nil && accepted.MessageID != "" {
			result.MessageID = accepted.MessageID
		}
	}
	return result, nil
}
