package sheet_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masjid/internal/content/sheet"
	"masjid/internal/domain"
	"masjid/internal/port"
)

type staticEndpoint string

func (s staticEndpoint) Current() string { return string(s) }

// newScriptServer fakes the spreadsheet endpoint: GET bodies are keyed by
// action, POST requests are recorded and answered with postReply.
func newScriptServer(t *testing.T, getBodies map[string]string, postReply string, posted *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			raw, _ := io.ReadAll(r.Body)
			if posted != nil {
				_ = json.Unmarshal(raw, posted)
			}
			_, _ = w.Write([]byte(postReply))
			return
		}
		body, ok := getBodies[r.URL.Query().Get("action")]
		if !ok {
			_, _ = w.Write([]byte(`{"error":"Action not found"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
}

func newClient(serverURL string) *sheet.Client {
	return sheet.NewClient(staticEndpoint(serverURL), 5*time.Second)
}

func TestClient_NoEndpoint(t *testing.T) {
	c := newClient("")

	_, err := c.PrayerTimes(context.Background())

	assert.ErrorIs(t, err, domain.ErrEndpointNotSet)
}

func TestClient_PrayerTimes_NormalizesTimeCells(t *testing.T) {
	srv := newScriptServer(t, map[string]string{
		sheet.ActionPrayerTimes: `[{"name":"Subuh","time":"1899-12-30T04:35:00.000Z"},{"name":"Isya","time":"19:10"}]`,
	}, "", nil)
	defer srv.Close()

	times, err := newClient(srv.URL).PrayerTimes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.PrayerTime{{Name: "Subuh", Time: "04:35"}, {Name: "Isya", Time: "19:10"}}, times)
}

func TestClient_Profile(t *testing.T) {
	srv := newScriptServer(t, map[string]string{
		sheet.ActionProfile: `{
			"details":[{"section":"history","content":"Berdiri 2010"},{"section":"mission","content":"- Satu\n- Dua"}],
			"staff":[{"name":"H. Abdullah","role":"Ketua Umum","imageUrl":""},{"name":"Budi","role":"Wakil Ketua Bidang Idarah"}]
		}`,
	}, "", nil)
	defer srv.Close()

	profile, err := newClient(srv.URL).Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Berdiri 2010", profile.Detail.History)
	assert.Equal(t, "- Satu\n- Dua", profile.Detail.Mission)
	assert.Empty(t, profile.Detail.Vision)
	require.Len(t, profile.Staff, 2)
	assert.Equal(t, "Wakil Ketua Bidang Idarah", profile.Staff[1].Role)
}

func TestClient_Profile_MissingDetails(t *testing.T) {
	srv := newScriptServer(t, map[string]string{
		sheet.ActionProfile: `{"staff":[]}`,
	}, "", nil)
	defer srv.Close()

	_, err := newClient(srv.URL).Profile(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Transactions_LenientCells(t *testing.T) {
	srv := newScriptServer(t, map[string]string{
		sheet.ActionFinance: `[
			{"id":1,"date":"2024-06-27T17:00:00.000Z","description":"Infaq Jumat","amount":2500000,"type":"income","category":"Infaq"},
			{"id":"2","date":"2024-06-29","description":"Listrik","amount":"1200000","type":"expense","category":"Operasional"}
		]`,
	}, "", nil)
	defer srv.Close()

	txs, err := newClient(srv.URL).Transactions(context.Background())

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "1", txs[0].ID)
	assert.Equal(t, "2024-06-27", txs[0].Date)
	assert.Equal(t, 2500000.0, txs[0].Amount)
	assert.Equal(t, 1200000.0, txs[1].Amount)
	assert.Equal(t, domain.TransactionExpense, txs[1].Type)
}

func TestClient_Consultations_ParsesTimestamps(t *testing.T) {
	srv := newScriptServer(t, map[string]string{
		sheet.ActionConsultations: `[
			{"id":1719000000000,"userId":2,"userName":"Hamba Allah","question":"Q?","answer":"","answeredBy":"","status":"pending","createdAt":"2024-06-21T20:00:00.000Z","answeredAt":""}
		]`,
	}, "", nil)
	defer srv.Close()

	items, err := newClient(srv.URL).Consultations(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1719000000000", items[0].ID)
	assert.Equal(t, "2", items[0].UserID)
	assert.Equal(t, domain.ConsultationPending, items[0].Status)
	assert.True(t, time.Date(2024, 6, 21, 20, 0, 0, 0, time.UTC).Equal(items[0].CreatedAt))
	assert.Nil(t, items[0].AnsweredAt)
}

func TestClient_PostByID_NotFound(t *testing.T) {
	srv := newScriptServer(t, map[string]string{
		sheet.ActionPostByID: `{"error":"Post not found"}`,
	}, "", nil)
	defer srv.Close()

	_, err := newClient(srv.URL).PostByID(context.Background(), "99")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_UnknownAction_IsUpstreamError(t *testing.T) {
	srv := newScriptServer(t, map[string]string{}, "", nil)
	defer srv.Close()

	_, err := newClient(srv.URL).Gallery(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Posts(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_SubmitConsultation_PostsAction(t *testing.T) {
	var posted map[string]string
	srv := newScriptServer(t, nil, `{"success":true,"message":"Pertanyaan berhasil dikirim"}`, &posted)
	defer srv.Close()

	err := newClient(srv.URL).SubmitConsultation(context.Background(), port.SubmitConsultationInput{
		UserID: "2", UserName: "Hamba Allah", Question: "Bolehkah?",
	})

	require.NoError(t, err)
	assert.Equal(t, sheet.ActionSubmitConsultation, posted["action"])
	assert.Equal(t, "Bolehkah?", posted["question"])
}

func TestClient_AnswerConsultation_NotFound(t *testing.T) {
	srv := newScriptServer(t, nil, `{"success":false,"message":"Data tidak ditemukan"}`, nil)
	defer srv.Close()

	err := newClient(srv.URL).AnswerConsultation(context.Background(), port.AnswerConsultationInput{ID: "7", Answer: "x", AnsweredBy: "Ust"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Login(t *testing.T) {
	srv := newScriptServer(t, nil, `{"success":true,"user":{"id":3,"name":"Ust. Abdullah","role":"jamaah","email":"ustadz@masjid.id","isUstadz":"TRUE"}}`, nil)
	defer srv.Close()

	user, err := newClient(srv.URL).Login(context.Background(), "ustadz@masjid.id", "secret")

	require.NoError(t, err)
	assert.Equal(t, "3", user.ID)
	assert.True(t, user.IsUstadz)
	assert.Equal(t, domain.ViewUstadz, user.View())
}

func TestClient_Login_Rejected(t *testing.T) {
	srv := newScriptServer(t, nil, `{"success":false,"message":"Email atau password salah"}`, nil)
	defer srv.Close()

	_, err := newClient(srv.URL).Login(context.Background(), "x@y.z", "bad")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
