package notifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clinicemr/clinic/pkg/config"
)

func TestBodyType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "text/plain", bodyType("text/plain", "<b>bold</b>"))
	require.Equal(t, "text/html", bodyType("text/html", "plain"))
	require.Equal(t, "text/html", bodyType("", "<p>Patient: Jane Doe</p>"))
	require.Equal(t, "text/plain", bodyType("", "Patient: Jane Doe"))
}

func TestClient_Message(t *testing.T) {
	t.Parallel()

	c := NewClient(config.Mailer{
		From:     "noreply@clinic.example",
		FromName: "Clinic",
		Host:     "smtp.clinic.example",
		Port:     587,
	})

	msg := c.message("New referral: Nephrology", "body", []string{"a@example.com", "b@example.com"}, "")

	require.Equal(t, []string{`"Clinic" <noreply@clinic.example>`}, msg.GetHeader("From"))
	require.Equal(t, []string{"a@example.com", "b@example.com"}, msg.GetHeader("To"))
	require.Equal(t, []string{"New referral: Nephrology"}, msg.GetHeader("Subject"))
	require.Equal(t, "smtp.clinic.example", c.dialer.TLSConfig.ServerName)
}
