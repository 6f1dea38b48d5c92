package ses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"masjid/internal/domain"
	"masjid/internal/email/ses"
)

func TestBuildConsultationHTML_EscapesUserText(t *testing.T) {
	body := ses.BuildConsultationHTML(domain.Consultation{
		UserName: "<b>Fulan</b>",
		Question: "Apakah <script>boleh</script>?",
	}, "https://almuamalah.id/konsultasi")

	assert.Contains(t, body, "&lt;b&gt;Fulan&lt;/b&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "https://almuamalah.id/konsultasi")
}
