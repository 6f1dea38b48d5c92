package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"masjid/internal/service"
)

// ContentHandler serves the read-only portal lists.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Home handles GET /api/v1/home
// @Summary Home page bundle
// @Description Prayer times, programs, the three latest posts and bank accounts in one call
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=service.HomeView}
// @Router /home [get]
func (h *ContentHandler) Home(c *gin.Context) {
	home, err := h.contentService.Home(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, home)
}

// PrayerTimes handles GET /api/v1/prayer-times
// @Summary Prayer schedule
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.PrayerTime}
// @Router /prayer-times [get]
func (h *ContentHandler) PrayerTimes(c *gin.Context) {
	respondList(c, h.contentService.PrayerTimes)
}

// Programs handles GET /api/v1/programs
// @Summary Mosque programs
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.Program}
// @Router /programs [get]
func (h *ContentHandler) Programs(c *gin.Context) {
	respondList(c, h.contentService.Programs)
}

// BankAccounts handles GET /api/v1/bank-accounts
// @Summary Donation accounts
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.BankAccount}
// @Router /bank-accounts [get]
func (h *ContentHandler) BankAccounts(c *gin.Context) {
	respondList(c, h.contentService.BankAccounts)
}

// Gallery handles GET /api/v1/gallery
// @Summary Photo and video gallery
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.MediaItem}
// @Router /gallery [get]
func (h *ContentHandler) Gallery(c *gin.Context) {
	respondList(c, h.contentService.Gallery)
}

func respondList[T any](c *gin.Context, fetch func(context.Context) ([]T, error)) {
	items, err := fetch(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, items, len(items))
}
