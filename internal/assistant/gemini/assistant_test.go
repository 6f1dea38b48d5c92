package gemini_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masjid/internal/assistant/gemini"
	"masjid/internal/config"
	"masjid/internal/domain"
)

func newTestAssistant(serverURL string) *gemini.Assistant {
	cfg := &config.AssistantConfig{
		Provider:    "gemini",
		APIKey:      "test-gemini-key",
		Model:       "gemini-2.0-flash",
		TimeoutSecs: 5,
	}
	return gemini.NewAssistantWithEndpoint(cfg, serverURL)
}

func successResponse(texts ...string) map[string]interface{} {
	parts := make([]map[string]interface{}, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, map[string]interface{}{"text": t})
	}
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content":      map[string]interface{}{"role": "model", "parts": parts},
				"finishReason": "STOP",
			},
		},
	}
}

func TestAssistant_Reply_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		sys := reqBody["systemInstruction"].(map[string]interface{})
		sysParts := sys["parts"].([]interface{})
		assert.Contains(t, sysParts[0].(map[string]interface{})["text"], "Ustadz AI")

		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 3)
		assert.Equal(t, "user", contents[0].(map[string]interface{})["role"])
		assert.Equal(t, "model", contents[1].(map[string]interface{})["role"])
		last := contents[2].(map[string]interface{})
		assert.Equal(t, "user", last["role"])
		assert.Equal(t, "Bagaimana dengan shalat jamak?", last["parts"].([]interface{})[0].(map[string]interface{})["text"])

		_ = json.NewEncoder(w).Encode(successResponse("Shalat jamak ", "diperbolehkan bagi musafir."))
	}))
	defer server.Close()

	history := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Text: "Assalamualaikum"},
		{Role: domain.ChatRoleModel, Text: "Waalaikumsalam"},
	}
	answer, err := newTestAssistant(server.URL).Reply(context.Background(), history, "Bagaimana dengan shalat jamak?")

	require.NoError(t, err)
	assert.Equal(t, "Shalat jamak diperbolehkan bagi musafir.", answer)
}

func TestAssistant_Reply_TrimsLongHistory(t *testing.T) {
	var sent int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody struct {
			Contents []json.RawMessage `json:"contents"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		sent = len(reqBody.Contents)
		_ = json.NewEncoder(w).Encode(successResponse("ok"))
	}))
	defer server.Close()

	history := make([]domain.ChatMessage, 50)
	for i := range history {
		history[i] = domain.ChatMessage{Role: domain.ChatRoleUser, Text: fmt.Sprintf("m%d", i)}
	}
	_, err := newTestAssistant(server.URL).Reply(context.Background(), history, "next")

	require.NoError(t, err)
	assert.Equal(t, 21, sent)
}

func TestAssistant_Reply_NoAPIKey(t *testing.T) {
	a := gemini.NewAssistantWithEndpoint(&config.AssistantConfig{}, "http://unused")

	_, err := a.Reply(context.Background(), nil, "halo")

	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}

func TestAssistant_Reply_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer server.Close()

	_, err := newTestAssistant(server.URL).Reply(context.Background(), nil, "halo")

	assert.ErrorIs(t, err, domain.ErrAssistantFailed)
	assert.Contains(t, err.Error(), "429")
}

func TestAssistant_Reply_Blocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer server.Close()

	_, err := newTestAssistant(server.URL).Reply(context.Background(), nil, "halo")

	assert.ErrorIs(t, err, domain.ErrAssistantFailed)
}

func TestAssistant_Reply_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestAssistant(server.URL).Reply(context.Background(), nil, "halo")

	assert.ErrorIs(t, err, domain.ErrAssistantFailed)
}

func TestAssistant_Reply_OversizedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(successResponse(strings.Repeat("a", 5<<20)))
	}))
	defer server.Close()

	_, err := newTestAssistant(server.URL).Reply(context.Background(), nil, "halo")

	assert.ErrorIs(t, err, domain.ErrAssistantFailed)
	assert.Contains(t, err.Error(), "exceeds")
}
