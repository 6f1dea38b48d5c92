package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
	"masjid/internal/handler"
	"masjid/internal/service"
	"masjid/mocks"
)

func TestContentHandler_PrayerTimes(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent)

	mockContent.On("PrayerTimes", mock.Anything).Return([]domain.PrayerTime{{Name: "Subuh", Time: "04:35"}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/prayer-times", nil)

	h.PrayerTimes(c)

	assert.JSONEq(t, `{"success":true,"data":[{"name":"Subuh","time":"04:35"}],"meta":{"total":1}}`, w.Body.String())
}

func TestContentHandler_Gallery_Error(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent)

	mockContent.On("Gallery", mock.Anything).Return(nil, domain.ErrUpstream)

	c, w := newContext(http.MethodGet, "/api/v1/gallery", nil)

	h.Gallery(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestContentHandler_Home(t *testing.T) {
	mockContent := new(mocks.MockContentService)
	h := handler.NewContentHandler(mockContent)

	mockContent.On("Home", mock.Anything).Return(&service.HomeView{
		PrayerTimes:  []domain.PrayerTime{},
		Programs:     []domain.Program{},
		LatestPosts:  []domain.Post{{ID: "1"}},
		BankAccounts: []domain.BankAccount{},
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/home", nil)

	h.Home(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockContent.AssertExpectations(t)
}
