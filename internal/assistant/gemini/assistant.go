// Package gemini implements the AI ustadz chat on Google's Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"masjid/internal/config"
	"masjid/internal/domain"
	"masjid/internal/port"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// maxHistoryTurns bounds the context sent with every message.
	maxHistoryTurns = 20

	maxResponseBytes = 4 << 20
)

// SystemInstruction sets the assistant's persona and limits.
const SystemInstruction = `Anda adalah seorang Ustadz AI yang bijaksana, ramah, dan berpengetahuan luas tentang agama Islam.
Tugas anda adalah menjawab pertanyaan jamaah tentang fiqih, akidah, sejarah Islam, dan konsultasi kehidupan sehari-hari berdasarkan Al-Quran dan As-Sunnah.
Jawaban harus santun, menyejukkan hati, dan mudah dipahami. Gunakan Bahasa Indonesia yang baik.
Jika pertanyaan menyangkut fatwa spesifik yang kontroversial, sarankan untuk berkonsultasi langsung dengan ulama setempat.`

// Assistant implements port.Assistant using Gemini generateContent.
type Assistant struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

var _ port.Assistant = (*Assistant)(nil)

// NewAssistant creates a Gemini-backed assistant.
func NewAssistant(cfg *config.AssistantConfig) *Assistant {
	return newAssistant(cfg, "")
}

// NewAssistantWithEndpoint creates an assistant pointing at a custom API endpoint (for testing).
func NewAssistantWithEndpoint(cfg *config.AssistantConfig, endpoint string) *Assistant {
	return newAssistant(cfg, endpoint)
}

func newAssistant(cfg *config.AssistantConfig, endpoint string) *Assistant {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Assistant{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Reply sends history plus message and returns the model's answer.
func (a *Assistant) Reply(ctx context.Context, history []domain.ChatMessage, message string) (string, error) {
	if a.apiKey == "" {
		return "", domain.ErrAssistantUnavailable
	}

	bodyBytes, err := json.Marshal(buildRequest(history, message))
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: calling gemini API: %v", domain.ErrAssistantFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrAssistantFailed, err)
	}
	if len(respBody) > maxResponseBytes {
		return "", fmt.Errorf("%w: response exceeds %d bytes", domain.ErrAssistantFailed, maxResponseBytes)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: gemini API status %d: %s", domain.ErrAssistantFailed, resp.StatusCode, truncate(string(respBody), 500))
	}

	return parseResponse(respBody)
}

func buildRequest(history []domain.ChatMessage, message string) generateRequest {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: string(m.Role), Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: string(domain.ChatRoleUser), Parts: []part{{Text: message}}})

	return generateRequest{
		SystemInstruction: content{Parts: []part{{Text: SystemInstruction}}},
		Contents:          contents,
	}
}

func parseResponse(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: unmarshaling response: %v", domain.ErrAssistantFailed, err)
	}
	if resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", domain.ErrAssistantFailed, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", domain.ErrAssistantFailed)
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty answer (finish reason %s)", domain.ErrAssistantFailed, resp.Candidates[0].FinishReason)
	}
	return text, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
