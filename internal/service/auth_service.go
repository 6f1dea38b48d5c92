package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"masjid/internal/config"
	"masjid/internal/domain"
	"masjid/internal/port"
)

const accessAudience = "access"

// Claims represents the JWT claims carrying the portal user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string          `json:"user_id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	IsUstadz bool            `json:"is_ustadz"`
	View     domain.View     `json:"view"`
}

// User rebuilds the account the token was issued for.
func (c *Claims) User() *domain.User {
	return &domain.User{ID: c.UserID, Name: c.Name, Email: c.Email, Role: c.Role, IsUstadz: c.IsUstadz}
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is returned on a successful login.
type Session struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
	View        domain.View  `json:"view"`
}

// AuthService defines the authentication contract.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Session, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	content port.ContentSource
	cfg     config.JWTConfig
	now     func() time.Time
}

// NewAuthService creates a new AuthService implementation. Credentials are
// checked by the content source; the service only issues and verifies tokens.
func NewAuthService(content port.ContentSource, cfg config.JWTConfig) AuthService {
	return &authService{content: content, cfg: cfg, now: time.Now}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	email := strings.TrimSpace(input.Email)
	user, err := s.content.Login(ctx, email, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if user.Role == "" || user.Role == domain.RoleGuest {
		user.Role = domain.RoleJamaah
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.AccessTokenExpiry)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{accessAudience},
		},
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsUstadz: user.IsUstadz,
		View:     user.View(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &Session{AccessToken: token, ExpiresAt: expiresAt, User: user, View: claims.View}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	aud, _ := claims.GetAudience()
	if !slices.Contains(aud, accessAudience) {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
