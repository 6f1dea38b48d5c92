package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"masjid/internal/service"
)

// MediaHandler handles admin gallery uploads.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/v1/admin/media
// @Summary Upload a gallery file
// @Description Upload a JPG, PNG or MP4 to object storage and get a URL to paste into the gallery sheet
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload (JPG, PNG or MP4)"
// @Param title formData string false "Caption"
// @Success 201 {object} Response{data=service.MediaUpload} "File uploaded successfully"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /admin/media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	upload, err := h.mediaService.Upload(c.Request.Context(), service.MediaUploadInput{
		File:     file,
		FileName: header.Filename,
		Size:     header.Size,
		Title:    strings.TrimSpace(c.PostForm("title")),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, upload)
}

// Delete handles DELETE /api/v1/admin/media/*key
// @Summary Delete an uploaded gallery file
// @Tags admin
// @Produce json
// @Param key path string true "Object key, e.g. gallery/<uuid>.jpg"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /admin/media/{key} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if err := h.mediaService.Delete(c.Request.Context(), key); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "file deleted"})
}
