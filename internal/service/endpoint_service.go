package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"masjid/internal/domain"
	"masjid/internal/port"
)

// ScriptURLPrefix is the only origin accepted as a content endpoint.
const ScriptURLPrefix = "https://script.google.com/"

// EndpointStatus describes the content endpoint in effect.
type EndpointStatus struct {
	URL       string `json:"url"`
	Connected bool   `json:"connected"`
}

// EndpointService manages the spreadsheet endpoint URL. It satisfies
// port.EndpointProvider so the sheet client sees changes immediately.
type EndpointService interface {
	port.EndpointProvider
	Load(ctx context.Context) error
	Status() EndpointStatus
	Set(ctx context.Context, rawURL string) (*EndpointStatus, error)
	Clear(ctx context.Context) error
}

type endpointService struct {
	settings port.SettingsRepository
	initial  string

	mu      sync.RWMutex
	current string
}

// NewEndpointService creates an EndpointService. initial is used until a
// stored value is loaded and again after Clear.
func NewEndpointService(settings port.SettingsRepository, initial string) EndpointService {
	initial = strings.TrimSpace(initial)
	return &endpointService{settings: settings, initial: initial, current: initial}
}

// ValidateScriptURL trims rawURL and checks it points at a script endpoint.
func ValidateScriptURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(trimmed, ScriptURLPrefix) {
		return "", domain.ErrInvalidEndpoint
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", domain.ErrInvalidEndpoint
	}
	return trimmed, nil
}

func (s *endpointService) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *endpointService) Status() EndpointStatus {
	current := s.Current()
	return EndpointStatus{URL: current, Connected: current != ""}
}

// Load replaces the current URL with the stored one, if any.
func (s *endpointService) Load(ctx context.Context) error {
	stored, err := s.settings.Get(ctx, port.SettingContentScriptURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("endpoint.Load: %w", err)
	}

	s.mu.Lock()
	s.current = stored
	s.mu.Unlock()
	return nil
}

func (s *endpointService) Set(ctx context.Context, rawURL string) (*EndpointStatus, error) {
	validated, err := ValidateScriptURL(rawURL)
	if err != nil {
		return nil, err
	}
	if err := s.settings.Set(ctx, port.SettingContentScriptURL, validated); err != nil {
		return nil, fmt.Errorf("endpoint.Set: %w", err)
	}

	s.mu.Lock()
	s.current = validated
	s.mu.Unlock()

	status := s.Status()
	return &status, nil
}

func (s *endpointService) Clear(ctx context.Context) error {
	if err := s.settings.Delete(ctx, port.SettingContentScriptURL); err != nil {
		return fmt.Errorf("endpoint.Clear: %w", err)
	}

	s.mu.Lock()
	s.current = s.initial
	s.mu.Unlock()
	return nil
}
