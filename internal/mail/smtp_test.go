package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestBuildPayload_MultipartStructure(t *testing.T) {
	d := NewSMTPDispatcher(&SMTPConfig{
		FromEmail: "noreply@example.com",
		FromName:  "Enquiry Portal",
	}, log.NewLoggerWithJSONOutput())

	payload := string(d.buildPayload(Message{
		To:       "a@b.com",
		Subject:  "Thank You for Your Enquiry!",
		HTMLBody: "<p>Dear A B,</p>",
		TextBody: "Dear A B,",
	}))

	assert.Contains(t, payload, "From: Enquiry Portal <noreply@example.com>\r\n")
	assert.Contains(t, payload, "To: a@b.com\r\n")
	assert.Contains(t, payload, "Subject: Thank You for Your Enquiry!\r\n")
	assert.Contains(t, payload, "Content-Type: multipart/alternative")
	assert.Contains(t, payload, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, payload, "Content-Type: text/html; charset=UTF-8")
	assert.True(t, strings.HasSuffix(payload, "--"+multipartBoundary+"--\r\n"))
}

func TestBuildPayload_TextOnly(t *testing.T) {
	d := NewSMTPDispatcher(&SMTPConfig{FromEmail: "noreply@example.com"}, log.NewLoggerWithJSONOutput())

	payload := string(d.buildPayload(Message{
		To:       "a@b.com",
		Subject:  "hi",
		TextBody: "plain only",
	}))

	assert.Contains(t, payload, "From: noreply@example.com\r\n")
	assert.NotContains(t, payload, "text/html")
}

func TestSend_DisabledLogsInsteadOfSending(t *testing.T) {
	d := NewSMTPDispatcher(&SMTPConfig{Enabled: false}, log.NewLoggerWithJSONOutput())

	err := d.Send(context.Background(), Message{To: "a@b.com", Subject: "x", TextBody: "y"})
	assert.NoError(t, err)
}

func TestSend_EnabledWithoutCredentialsFails(t *testing.T) {
	d := NewSMTPDispatcher(&SMTPConfig{Enabled: true}, log.NewLoggerWithJSONOutput())

	err := d.Send(context.Background(), Message{To: "a@b.com", Subject: "x", TextBody: "y"})
	assert.Error(t, err)
}
