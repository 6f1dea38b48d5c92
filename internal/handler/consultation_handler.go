package handler

import (
	"github.com/gin-gonic/gin"

	"masjid/internal/middleware"
	"masjid/internal/service"
)

// ConsultationHandler handles the question-and-answer inbox.
type ConsultationHandler struct {
	consultationService service.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(consultationService service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

// List handles GET /api/v1/consultations
// @Summary List consultations
// @Description Jamaah see their own questions; ustadz and admin see all, pending first
// @Tags consultations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]domain.Consultation}
// @Failure 401 {object} ErrorResponseBody
// @Router /consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	items, err := h.consultationService.List(c.Request.Context(), middleware.GetUser(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, items, len(items))
}

// Submit handles POST /api/v1/consultations
// @Summary Ask a question
// @Tags consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.SubmitConsultationInput true "Question"
// @Success 201 {object} Response{data=MessageResponse}
// @Failure 400 {object} ErrorResponseBody
// @Failure 401 {object} ErrorResponseBody
// @Router /consultations [post]
func (h *ConsultationHandler) Submit(c *gin.Context) {
	var input service.SubmitConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.consultationService.Submit(c.Request.Context(), middleware.GetUser(c), input); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, MessageResponse{Message: "Pertanyaan berhasil dikirim"})
}

// Answer handles POST /api/v1/consultations/:id/answer
// @Summary Answer a question
// @Tags consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultation ID"
// @Param body body service.AnswerConsultationInput true "Answer"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 400 {object} ErrorResponseBody
// @Failure 403 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /consultations/{id}/answer [post]
func (h *ConsultationHandler) Answer(c *gin.Context) {
	var input service.AnswerConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.consultationService.Answer(c.Request.Context(), middleware.GetUser(c), c.Param("id"), input); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "Jawaban berhasil disimpan"})
}
