// Package sheet talks to the spreadsheet's script endpoint, which exposes
// each tab as a JSON list through GET ?action=... and accepts writes as a
// JSON POST body carrying an "action" field.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"masjid/internal/domain"
	"masjid/internal/port"
)

// Read actions understood by the script endpoint.
const (
	ActionPrayerTimes   = "getPrayerTimes"
	ActionPrograms      = "getPrograms"
	ActionProfile       = "getProfile"
	ActionBankAccounts  = "getBankAccounts"
	ActionPosts         = "getPosts"
	ActionPostByID      = "getPostById"
	ActionFinance       = "getFinance"
	ActionGallery       = "getGallery"
	ActionConsultations = "getConsultations"
)

// Write actions understood by the script endpoint.
const (
	ActionLogin              = "login"
	ActionSubmitConsultation = "submitConsultation"
	ActionAnswerConsultation = "answerConsultation"
)

const maxResponseBytes = 8 << 20

// Client implements port.ContentSource against the script endpoint.
type Client struct {
	endpoints port.EndpointProvider
	client    *http.Client
}

var _ port.ContentSource = (*Client)(nil)

// NewClient creates a Client that resolves the endpoint URL on every call.
func NewClient(endpoints port.EndpointProvider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) PrayerTimes(ctx context.Context) ([]domain.PrayerTime, error) {
	var rows []prayerRow
	if err := c.get(ctx, ActionPrayerTimes, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, prayerRow.toDomain), nil
}

func (c *Client) Programs(ctx context.Context) ([]domain.Program, error) {
	var rows []programRow
	if err := c.get(ctx, ActionPrograms, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, programRow.toDomain), nil
}

// Profile returns domain.ErrNotFound when the payload has no details list,
// which is how the sheet signals a missing profile tab.
func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	var resp profileResponse
	if err := c.get(ctx, ActionProfile, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Details == nil {
		return nil, fmt.Errorf("sheet.Profile: %w", domain.ErrNotFound)
	}

	var detail domain.ProfileDetail
	for _, row := range *resp.Details {
		switch row.Section.String() {
		case "history":
			detail.History = string(row.Content)
		case "vision":
			detail.Vision = string(row.Content)
		case "mission":
			detail.Mission = string(row.Content)
		}
	}
	return &domain.Profile{Detail: detail, Staff: mapRows(resp.Staff, staffRow.toDomain)}, nil
}

func (c *Client) BankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	var rows []bankRow
	if err := c.get(ctx, ActionBankAccounts, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, bankRow.toDomain), nil
}

func (c *Client) Posts(ctx context.Context) ([]domain.Post, error) {
	var rows []postRow
	if err := c.get(ctx, ActionPosts, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, postRow.toDomain), nil
}

func (c *Client) PostByID(ctx context.Context, id string) (*domain.Post, error) {
	var row postRow
	if err := c.get(ctx, ActionPostByID, url.Values{"id": {id}}, &row); err != nil {
		return nil, err
	}
	post := row.toDomain()
	return &post, nil
}

func (c *Client) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	var rows []financeRow
	if err := c.get(ctx, ActionFinance, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, financeRow.toDomain), nil
}

func (c *Client) Gallery(ctx context.Context) ([]domain.MediaItem, error) {
	var rows []galleryRow
	if err := c.get(ctx, ActionGallery, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, galleryRow.toDomain), nil
}

func (c *Client) Consultations(ctx context.Context) ([]domain.Consultation, error) {
	var rows []consultationRow
	if err := c.get(ctx, ActionConsultations, nil, &rows); err != nil {
		return nil, err
	}
	return mapRows(rows, consultationRow.toDomain), nil
}

func (c *Client) SubmitConsultation(ctx context.Context, input port.SubmitConsultationInput) error {
	_, err := c.post(ctx, map[string]string{
		"action":   ActionSubmitConsultation,
		"userId":   input.UserID,
		"userName": input.UserName,
		"question": input.Question,
	})
	return err
}

func (c *Client) AnswerConsultation(ctx context.Context, input port.AnswerConsultationInput) error {
	res, err := c.post(ctx, map[string]string{
		"action":     ActionAnswerConsultation,
		"id":         input.ID,
		"answer":     input.Answer,
		"answeredBy": input.AnsweredBy,
	})
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("sheet.AnswerConsultation %s: %w", input.ID, domain.ErrNotFound)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	res, err := c.post(ctx, map[string]string{
		"action":   ActionLogin,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success || res.User == nil {
		return nil, domain.ErrInvalidCredentials
	}
	user := res.User.toDomain()
	return &user, nil
}

func (c *Client) endpoint() (*url.URL, error) {
	raw := c.endpoints.Current()
	if raw == "" {
		return nil, domain.ErrEndpointNotSet
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}
	return u, nil
}

func (c *Client) get(ctx context.Context, action string, params url.Values, out interface{}) error {
	u, err := c.endpoint()
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("action", action)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	body, err := c.do(req, action)
	if err != nil {
		return err
	}
	if err := upstreamError(body, action); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", domain.ErrUpstream, action, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, payload map[string]string) (*actionResult, error) {
	u, err := c.endpoint()
	if err != nil {
		return nil, err
	}
	action := payload["action"]

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// text/plain keeps the script runtime from rejecting the body as a form post.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	body, err := c.do(req, action)
	if err != nil {
		return nil, err
	}
	var res actionResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrUpstream, action, err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrUpstream, action, res.Error)
	}
	return &res, nil
}

func (c *Client) do(req *http.Request, action string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling %s: %v", domain.ErrUpstream, action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrUpstream, action, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrUpstream, action, resp.StatusCode)
	}
	return body, nil
}

// upstreamError detects the {"error": "..."} envelope the script returns for
// unknown actions, missing rows and runtime exceptions.
func upstreamError(body []byte, action string) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope.Error == "" {
		return nil
	}
	if strings.Contains(strings.ToLower(envelope.Error), "not found") && action == ActionPostByID {
		return fmt.Errorf("sheet.%s: %s: %w", action, envelope.Error, domain.ErrNotFound)
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrUpstream, action, envelope.Error)
}
