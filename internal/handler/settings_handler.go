package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masjid/internal/service"
)

// SettingsHandler manages the spreadsheet endpoint the portal reads from.
type SettingsHandler struct {
	endpointService service.EndpointService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(endpointService service.EndpointService) *SettingsHandler {
	return &SettingsHandler{endpointService: endpointService}
}

// Connect handles GET /api/v1/admin/connect?apiUrl=...
// @Summary Connect via magic link
// @Description Stores the script URL carried by a magic link
// @Tags admin
// @Produce json
// @Param apiUrl query string true "Script endpoint URL"
// @Success 200 {object} Response{data=service.EndpointStatus}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /admin/connect [get]
func (h *SettingsHandler) Connect(c *gin.Context) {
	apiURL := c.Query("apiUrl")
	if apiURL == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "apiUrl query parameter is required")
		return
	}
	h.set(c, apiURL)
}

// GetContentSource handles GET /api/v1/admin/settings/content-source
// @Summary Current content endpoint
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=service.EndpointStatus}
// @Security BearerAuth
// @Router /admin/settings/content-source [get]
func (h *SettingsHandler) GetContentSource(c *gin.Context) {
	RespondOK(c, h.endpointService.Status())
}

// PutContentSource handles PUT /api/v1/admin/settings/content-source
// @Summary Set the content endpoint
// @Tags admin
// @Accept json
// @Produce json
// @Param body body ContentSourceRequest true "Script endpoint"
// @Success 200 {object} Response{data=service.EndpointStatus}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /admin/settings/content-source [put]
func (h *SettingsHandler) PutContentSource(c *gin.Context) {
	var req ContentSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}
	h.set(c, req.URL)
}

// DeleteContentSource handles DELETE /api/v1/admin/settings/content-source
// @Summary Disconnect the content endpoint
// @Description Reverts to the configured default, which may be empty (demo data)
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=service.EndpointStatus}
// @Security BearerAuth
// @Router /admin/settings/content-source [delete]
func (h *SettingsHandler) DeleteContentSource(c *gin.Context) {
	if err := h.endpointService.Clear(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, h.endpointService.Status())
}

func (h *SettingsHandler) set(c *gin.Context, rawURL string) {
	status, err := h.endpointService.Set(c.Request.Context(), rawURL)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}
