package handler

import (
	"github.com/gin-gonic/gin"

	"masjid/internal/service"
)

// ProfileHandler serves the mosque profile and its management chart.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /api/v1/profile
// @Summary Mosque profile
// @Description History, vision, mission (also split into items) and the raw staff roster
// @Tags profile
// @Produce json
// @Success 200 {object} Response{data=service.ProfileView}
// @Failure 502 {object} ErrorResponseBody
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.profileService.Profile(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// OrgChart handles GET /api/v1/profile/org-chart
// @Summary Management chart
// @Description Staff roster grouped into protectors, advisors, core executives, pillars and divisions
// @Tags profile
// @Produce json
// @Param q query string false "Case-insensitive name/role filter"
// @Success 200 {object} Response{data=orgchart.OrgChart}
// @Failure 502 {object} ErrorResponseBody
// @Router /profile/org-chart [get]
func (h *ProfileHandler) OrgChart(c *gin.Context) {
	chart, err := h.profileService.OrgChart(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, chart)
}
