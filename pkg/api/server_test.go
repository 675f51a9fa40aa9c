package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multichannel-ai/agentrouter/pkg/services"
	testdb "github.com/multichannel-ai/agentrouter/test/database"
)

// newTestServer wires a full server against an isolated test database.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewServer(
		client,
		services.NewAgentService(client.Client),
		services.NewChannelService(client.Client),
		services.NewMappingService(client.Client),
		services.NewRoutingService(client.Client),
		services.NewAdminService(client.Client),
	)
}

func doJSON(t *testing.T, srv *Server, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_AgentLifecycle(t *testing.T) {
	srv := newTestServer(t)

	t.Run("create returns 201 with the record", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
			"agent_id":         "asst_api",
			"agent_name":       "API Agent",
			"foundry_endpoint": "https://foundry.example.com/api/projects/api",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "asst_api", body["agent_id"])
		assert.Equal(t, true, body["is_active"])
	})

	t.Run("duplicate create returns 409", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
			"agent_id":         "asst_api",
			"agent_name":       "Other",
			"foundry_endpoint": "https://foundry.example.com",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "duplicate_id", decodeBody(t, rec)["reason"])
	})

	t.Run("malformed id returns 422", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
			"agent_id":         "agent-1",
			"agent_name":       "Bad",
			"foundry_endpoint": "https://foundry.example.com",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "invalid_format", decodeBody(t, rec)["reason"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
			"agent_id": "asst_incomplete",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get and list round-trip", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/agents/asst_api", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/v1/agents?is_active=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		agents := decodeBody(t, rec)["agents"].([]any)
		assert.Len(t, agents, 1)
	})

	t.Run("patch updates in place", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPatch, "/api/v1/agents/asst_api", map[string]any{
			"agent_name": "Renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Renamed", decodeBody(t, rec)["agent_name"])
	})

	t.Run("delete soft-deletes and returns 204", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, "/api/v1/agents/asst_api", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/v1/agents/asst_api", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["is_active"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/agents/asst_nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_RoutingEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
		"agent_id":         "asst_e2e",
		"agent_name":       "E2E Agent",
		"foundry_endpoint": "https://foundry.example.com/api/projects/e2e",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/channels", map[string]any{
		"channel_id":   "ch_e2e",
		"channel_name": "E2E WhatsApp",
		"channel_type": "whatsapp",
		"provider":     "acs",
		"phone_number": "+1 (555) 123-4567",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "+15551234567", decodeBody(t, rec)["phone_number"])

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/mappings", map[string]any{
		"agent_id":   "asst_e2e",
		"channel_id": "ch_e2e",
		"is_primary": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	mappingID := decodeBody(t, rec)["mapping_id"].(string)

	t.Run("resolves a formatted number", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/routing/+1%20555%20123%204567", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		agent := body["agent"].(map[string]any)
		assert.Equal(t, "asst_e2e", agent["agent_id"])
		assert.Equal(t, mappingID, body["mapping_id"])
	})

	t.Run("unknown number returns 404 no_channel", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/routing/+19990001111", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "no_channel", decodeBody(t, rec)["reason"])
	})

	t.Run("second primary on the channel returns 409", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
			"agent_id":         "asst_rival",
			"agent_name":       "Rival",
			"foundry_endpoint": "https://foundry.example.com/api/projects/rival",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, srv, http.MethodPost, "/api/v1/mappings", map[string]any{
			"agent_id":   "asst_rival",
			"channel_id": "ch_e2e",
			"is_primary": true,
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "conflicting_primary", decodeBody(t, rec)["reason"])
	})

	t.Run("deleting the mapping breaks resolution", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, "/api/v1/mappings/"+mappingID, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/v1/routing/+15551234567", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "no_primary_agent", decodeBody(t, rec)["reason"])
	})
}

func TestServer_SystemEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("health reports healthy database", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
	})

	t.Run("stats count records", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/agents", map[string]any{
			"agent_id":         "asst_stats",
			"agent_name":       "Stats",
			"foundry_endpoint": "https://foundry.example.com",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/v1/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["total_agents"])
	})

	t.Run("validation reports warnings for unmapped agents", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/validation", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["valid"])
		warnings := body["warnings"].([]any)
		assert.NotEmpty(t, warnings)
	})

	t.Run("send endpoint is 503 without messaging config", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/messages", map[string]any{
			"to":   "+15551234567",
			"text": "hi",
		})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
