package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"masjid/internal/domain"
	"masjid/internal/port"
	"masjid/internal/service"
	"masjid/mocks"
)

var (
	jamaah = &domain.User{ID: "2", Name: "Hamba Allah", Role: domain.RoleJamaah}
	ustadz = &domain.User{ID: "3", Name: "Ust. Abdullah", Role: domain.RoleJamaah, IsUstadz: true}
	admin  = &domain.User{ID: "1", Name: "Administrator", Role: domain.RoleAdmin}
)

func at(day int) time.Time {
	return time.Date(2024, 6, day, 8, 0, 0, 0, time.UTC)
}

func sampleConsultations() []domain.Consultation {
	return []domain.Consultation{
		{ID: "a", UserID: "2", Question: "lama, dijawab", Status: domain.ConsultationAnswered, CreatedAt: at(1)},
		{ID: "b", UserID: "9", Question: "orang lain", Status: domain.ConsultationPending, CreatedAt: at(2)},
		{ID: "c", UserID: "2", Question: "baru", Status: domain.ConsultationPending, CreatedAt: at(5)},
		{ID: "d", UserID: "9", Question: "dijawab", Status: domain.ConsultationAnswered, CreatedAt: at(4)},
	}
}

func consultationIDs(items []domain.Consultation) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestConsultationService_List_JamaahSeesOwnNewestFirst(t *testing.T) {
	content := new(mocks.MockContentSource)
	content.On("Consultations", mock.Anything).Return(sampleConsultations(), nil)
	svc := service.NewConsultationService(content, nil, "", nil)

	items, err := svc.List(context.Background(), jamaah)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, consultationIDs(items))
}

func TestConsultationService_List_UstadzSeesAllPendingFirst(t *testing.T) {
	for _, user := range []*domain.User{ustadz, admin} {
		content := new(mocks.MockContentSource)
		content.On("Consultations", mock.Anything).Return(sampleConsultations(), nil)
		svc := service.NewConsultationService(content, nil, "", nil)

		items, err := svc.List(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "d", "a"}, consultationIDs(items), user.Name)
	}
}

func TestConsultationService_List_Guest(t *testing.T) {
	_, err := service.NewConsultationService(new(mocks.MockContentSource), nil, "", nil).List(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestConsultationService_Submit_NotifiesUstadz(t *testing.T) {
	content := new(mocks.MockContentSource)
	email := new(mocks.MockEmailSender)
	content.On("SubmitConsultation", mock.Anything, port.SubmitConsultationInput{UserID: "2", UserName: "Hamba Allah", Question: "Bolehkah?"}).Return(nil)
	email.On("SendNewConsultationEmail", mock.Anything, "ustadz@masjid.id", mock.MatchedBy(func(c domain.Consultation) bool {
		return c.Question == "Bolehkah?" && c.UserName == "Hamba Allah" && c.Status == domain.ConsultationPending
	})).Return(nil)
	svc := service.NewConsultationService(content, email, "ustadz@masjid.id", nil)

	err := svc.Submit(context.Background(), jamaah, service.SubmitConsultationInput{Question: "  Bolehkah?  "})

	require.NoError(t, err)
	content.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestConsultationService_Submit_EmailFailureIsNotFatal(t *testing.T) {
	content := new(mocks.MockContentSource)
	email := new(mocks.MockEmailSender)
	content.On("SubmitConsultation", mock.Anything, mock.Anything).Return(nil)
	email.On("SendNewConsultationEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("ses down"))
	svc := service.NewConsultationService(content, email, "ustadz@masjid.id", nil)

	assert.NoError(t, svc.Submit(context.Background(), jamaah, service.SubmitConsultationInput{Question: "Q"}))
}

func TestConsultationService_Submit_NoAddressSkipsEmail(t *testing.T) {
	content := new(mocks.MockContentSource)
	email := new(mocks.MockEmailSender)
	content.On("SubmitConsultation", mock.Anything, mock.Anything).Return(nil)
	svc := service.NewConsultationService(content, email, "", nil)

	require.NoError(t, svc.Submit(context.Background(), jamaah, service.SubmitConsultationInput{Question: "Q"}))
	email.AssertNotCalled(t, "SendNewConsultationEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsultationService_Submit_BlankQuestion(t *testing.T) {
	content := new(mocks.MockContentSource)
	svc := service.NewConsultationService(content, nil, "", nil)

	err := svc.Submit(context.Background(), jamaah, service.SubmitConsultationInput{Question: " \n "})

	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
	content.AssertNotCalled(t, "SubmitConsultation", mock.Anything, mock.Anything)
}

func TestConsultationService_Submit_UpstreamError(t *testing.T) {
	content := new(mocks.MockContentSource)
	content.On("SubmitConsultation", mock.Anything, mock.Anything).Return(domain.ErrUpstream)
	svc := service.NewConsultationService(content, nil, "", nil)

	err := svc.Submit(context.Background(), jamaah, service.SubmitConsultationInput{Question: "Q"})

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestConsultationService_Answer(t *testing.T) {
	content := new(mocks.MockContentSource)
	content.On("AnswerConsultation", mock.Anything, port.AnswerConsultationInput{ID: "c", Answer: "Boleh.", AnsweredBy: "Ust. Abdullah"}).Return(nil)
	svc := service.NewConsultationService(content, nil, "", nil)

	require.NoError(t, svc.Answer(context.Background(), ustadz, "c", service.AnswerConsultationInput{Answer: " Boleh. "}))
	content.AssertExpectations(t)
}

func TestConsultationService_Answer_Permissions(t *testing.T) {
	svc := service.NewConsultationService(new(mocks.MockContentSource), nil, "", nil)

	err := svc.Answer(context.Background(), jamaah, "c", service.AnswerConsultationInput{Answer: "x"})
	assert.ErrorIs(t, err, domain.ErrUstadzOnly)

	err = svc.Answer(context.Background(), nil, "c", service.AnswerConsultationInput{Answer: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestConsultationService_Answer_BlankAndMissing(t *testing.T) {
	content := new(mocks.MockContentSource)
	content.On("AnswerConsultation", mock.Anything, mock.Anything).Return(domain.ErrNotFound)
	svc := service.NewConsultationService(content, nil, "", nil)

	err := svc.Answer(context.Background(), admin, "c", service.AnswerConsultationInput{Answer: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyAnswer)

	err = svc.Answer(context.Background(), admin, "zz", service.AnswerConsultationInput{Answer: "ok"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
