package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	t.Run("posts payload and parses accepted response", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"messageId":"msg-123"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticTokenProvider("tok"))
		result, err := client.Send(context.Background(), "chan-1", "+15551234567", "hello")
		require.NoError(t, err)

		assert.Equal(t, "/messaging/connect/v1/messages", gotPath)
		assert.Equal(t, "Bearer tok", gotAuth)
		assert.Equal(t, "chan-1", gotBody["channelRegistrationId"])
		assert.Equal(t, "msg-123", result.MessageID)
		assert.Equal(t, "accepted", result.Status)
		assert.Equal(t, "chan-1", result.ChannelRegistrationID)
	})

	t.Run("empty accepted body yields pending id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticTokenProvider("tok"))
		result, err := client.Send(context.Background(), "chan-1", "+15551234567", "hello")
		require.NoError(t, err)
		assert.Equal(t, "pending", result.MessageID)
	})

	t.Run("non-202 response becomes SendError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad channel", http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, StaticTokenProvider("tok"))
		_, err := client.Send(context.Background(), "chan-1", "+15551234567", "hello")
		require.Error(t, err)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.Equal(t, http.StatusUnprocessableEntity, sendErr.StatusCode)
		assert.Contains(t, sendErr.Body, "bad channel")
	})
}

func TestFallbackSender_Send(t *testing.T) {
	t.Run("falls through to the next channel on failure", func(t *testing.T) {
		attempts := map[string]int{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload struct {
				ChannelRegistrationID string `json:"channelRegistrationId"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			attempts[payload.ChannelRegistrationID]++

			if payload.ChannelRegistrationID == "chan-broken" {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		sender := NewFallbackSender(NewClient(srv.URL, StaticTokenProvider("tok")))
		result, err := sender.Send(context.Background(), "+15551234567", "hi",
			[]string{"chan-broken", "chan-ok"})
		require.NoError(t, err)

		assert.Equal(t, "chan-ok", result.ChannelRegistrationID)
		assert.Equal(t, 1, attempts["chan-broken"])
		assert.Equal(t, 1, attempts["chan-ok"])
	})

	t.Run("joins all errors when every channel fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		sender := NewFallbackSender(NewClient(srv.URL, StaticTokenProvider("tok")))
		_, err := sender.Send(context.Background(), "+15551234567", "hi",
			[]string{"chan-a", "chan-b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 2 channel attempts failed")
		assert.Contains(t, err.Error(), "chan-a")
		assert.Contains(t, err.Error(), "chan-b")
	})

	t.Run("rejects an empty channel list", func(t *testing.T) {
		sender := NewFallbackSender(NewClient("http://unused.invalid", StaticTokenProvider("tok")))
		_, err := sender.Send(context.Background(), "+15551234567", "hi", nil)
		require.Error(t, err)
	})
}
