package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
	"masjid/internal/handler"
	"masjid/internal/service"
	"masjid/mocks"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	session := &service.Session{
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(24 * time.Hour),
		User:        &domain.User{ID: "2", Name: "Hamba Allah", Role: domain.RoleJamaah},
		View:        domain.ViewJamaah,
	}
	mockAuth.On("Login", mock.Anything, service.LoginInput{
		Email:    "jamaah@masjid.id",
		Password: "jamaah123",
	}).Return(session, nil)

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "jamaah@masjid.id",
		"password": "jamaah123",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "jamaah@masjid.id",
		"password": "wrong",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, w).Error.Code)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "not-an-email",
	})

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Me(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	c, w := newContext(http.MethodGet, "/api/v1/auth/me", nil)
	withClaims(c, &service.Claims{UserID: "3", Name: "Ust. Abdullah", Role: domain.RoleJamaah, IsUstadz: true})

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"user":{"id":"3","name":"Ust. Abdullah","role":"jamaah","isUstadz":true},"view":"ustadz"}}`,
		w.Body.String())
}

func TestAuthHandler_Me_Guest(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	c, w := newContext(http.MethodGet, "/api/v1/auth/me", nil)

	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
