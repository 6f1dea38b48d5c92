package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
	"masjid/internal/handler"
	"masjid/internal/service"
	"masjid/mocks"
)

func jamaahClaims() *service.Claims {
	return &service.Claims{UserID: "2", Name: "Hamba Allah", Role: domain.RoleJamaah}
}

func TestConsultationHandler_List_PassesUser(t *testing.T) {
	mockConsult := new(mocks.MockConsultationService)
	h := handler.NewConsultationHandler(mockConsult)

	mockConsult.On("List", mock.Anything, mock.MatchedBy(func(u *domain.User) bool { return u != nil && u.ID == "2" })).
		Return([]domain.Consultation{{ID: "1"}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/consultations", nil)
	withClaims(c, jamaahClaims())

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode(t, w).Meta.Total)
	mockConsult.AssertExpectations(t)
}

func TestConsultationHandler_Submit(t *testing.T) {
	mockConsult := new(mocks.MockConsultationService)
	h := handler.NewConsultationHandler(mockConsult)

	mockConsult.On("Submit", mock.Anything, mock.Anything, service.SubmitConsultationInput{Question: "Bolehkah?"}).Return(nil)

	c, w := newContext(http.MethodPost, "/api/v1/consultations", map[string]string{"question": "Bolehkah?"})
	withClaims(c, jamaahClaims())

	h.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockConsult.AssertExpectations(t)
}

func TestConsultationHandler_Submit_MissingQuestion(t *testing.T) {
	mockConsult := new(mocks.MockConsultationService)
	h := handler.NewConsultationHandler(mockConsult)

	c, w := newContext(http.MethodPost, "/api/v1/consultations", map[string]string{})
	withClaims(c, jamaahClaims())

	h.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockConsult.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsultationHandler_Answer_UstadzOnly(t *testing.T) {
	mockConsult := new(mocks.MockConsultationService)
	h := handler.NewConsultationHandler(mockConsult)

	mockConsult.On("Answer", mock.Anything, mock.Anything, "7", service.AnswerConsultationInput{Answer: "Boleh."}).
		Return(domain.ErrUstadzOnly)

	c, w := newContext(http.MethodPost, "/api/v1/consultations/7/answer", map[string]string{"answer": "Boleh."})
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	withClaims(c, jamaahClaims())

	h.Answer(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "USTADZ_ONLY", decode(t, w).Error.Code)
}
