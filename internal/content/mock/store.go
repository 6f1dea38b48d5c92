// Package mock serves the portal's demo content from an embedded seed so the
// site stays usable without a spreadsheet endpoint.
package mock

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"masjid/internal/domain"
	"masjid/internal/port"
)

//go:embed seed.yaml
var seedYAML []byte

type account struct {
	ID       string          `yaml:"id"`
	Name     string          `yaml:"name"`
	Email    string          `yaml:"email"`
	Password string          `yaml:"password"`
	Role     domain.UserRole `yaml:"role"`
	IsUstadz bool            `yaml:"isUstadz"`

	hash []byte
}

type seed struct {
	PrayerTimes   []domain.PrayerTime   `yaml:"prayerTimes"`
	Programs      []domain.Program      `yaml:"programs"`
	Profile       domain.ProfileDetail  `yaml:"profile"`
	Staff         []domain.Staff        `yaml:"staff"`
	BankAccounts  []domain.BankAccount  `yaml:"bankAccounts"`
	Posts         []domain.Post         `yaml:"posts"`
	Transactions  []domain.Transaction  `yaml:"transactions"`
	Gallery       []domain.MediaItem    `yaml:"gallery"`
	Consultations []domain.Consultation `yaml:"consultations"`
	Accounts      []account             `yaml:"accounts"`
}

// Store is an in-memory port.ContentSource. Reads return copies; only the
// consultation list is mutable.
type Store struct {
	data seed
	now  func() time.Time

	mu            sync.RWMutex
	consultations []domain.Consultation
}

var _ port.ContentSource = (*Store)(nil)

// NewStore loads the embedded seed. Demo account passwords are hashed here
// and the plaintext is discarded.
func NewStore() (*Store, error) {
	return newStore(seedYAML)
}

// NewStoreFromYAML loads a caller-supplied seed in the embedded seed's format.
func NewStoreFromYAML(raw []byte) (*Store, error) {
	return newStore(raw)
}

func newStore(raw []byte) (*Store, error) {
	var data seed
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("mock.NewStore: parsing seed: %w", err)
	}
	for i := range data.Accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Accounts[i].Password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("mock.NewStore: hashing password for %s: %w", data.Accounts[i].Email, err)
		}
		data.Accounts[i].hash = hash
		data.Accounts[i].Password = ""
	}
	consultations := append([]domain.Consultation(nil), data.Consultations...)
	return &Store{data: data, now: time.Now, consultations: consultations}, nil
}

func (s *Store) PrayerTimes(_ context.Context) ([]domain.PrayerTime, error) {
	return clone(s.data.PrayerTimes), nil
}

func (s *Store) Programs(_ context.Context) ([]domain.Program, error) {
	return clone(s.data.Programs), nil
}

func (s *Store) Profile(_ context.Context) (*domain.Profile, error) {
	return &domain.Profile{Detail: s.data.Profile, Staff: clone(s.data.Staff)}, nil
}

func (s *Store) BankAccounts(_ context.Context) ([]domain.BankAccount, error) {
	return clone(s.data.BankAccounts), nil
}

func (s *Store) Posts(_ context.Context) ([]domain.Post, error) {
	return clone(s.data.Posts), nil
}

func (s *Store) PostByID(_ context.Context, id string) (*domain.Post, error) {
	for _, p := range s.data.Posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, fmt.Errorf("mock.PostByID %s: %w", id, domain.ErrNotFound)
}

func (s *Store) Transactions(_ context.Context) ([]domain.Transaction, error) {
	return clone(s.data.Transactions), nil
}

func (s *Store) Gallery(_ context.Context) ([]domain.MediaItem, error) {
	return clone(s.data.Gallery), nil
}

// Consultations returns every question, newest first.
func (s *Store) Consultations(_ context.Context) ([]domain.Consultation, error) {
	s.mu.RLock()
	out := clone(s.consultations)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) SubmitConsultation(_ context.Context, input port.SubmitConsultationInput) error {
	c := domain.Consultation{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		UserName:  input.UserName,
		Question:  input.Question,
		Status:    domain.ConsultationPending,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.consultations = append([]domain.Consultation{c}, s.consultations...)
	s.mu.Unlock()
	return nil
}

func (s *Store) AnswerConsultation(_ context.Context, input port.AnswerConsultationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.consultations {
		if s.consultations[i].ID != input.ID {
			continue
		}
		answeredAt := s.now().UTC()
		s.consultations[i].Answer = input.Answer
		s.consultations[i].AnsweredBy = input.AnsweredBy
		s.consultations[i].Status = domain.ConsultationAnswered
		s.consultations[i].AnsweredAt = &answeredAt
		return nil
	}
	return fmt.Errorf("mock.AnswerConsultation %s: %w", input.ID, domain.ErrNotFound)
}

// Login checks the demo accounts. Email matching ignores case and padding.
func (s *Store) Login(_ context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	for _, a := range s.data.Accounts {
		if !strings.EqualFold(a.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		return &domain.User{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role, IsUstadz: a.IsUstadz}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
