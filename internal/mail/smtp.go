package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/akeren/enquiry-portal/internal/log"
)

const multipartBoundary = "----=_NextPart_enquiry_portal"

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// Enabled=false logs the message instead of sending it. Used in
	// development where no SMTP account is configured.
	Enabled bool
}

// SMTPDispatcher sends multipart HTML+text mail over a single SMTP
// connection per message. The dial and the whole exchange are bounded by the
// caller's context deadline.
type SMTPDispatcher struct {
	cfg    *SMTPConfig
	logger *log.Logger
}

func NewSMTPDispatcher(cfg *SMTPConfig, logger *log.Logger) *SMTPDispatcher {
	return &SMTPDispatcher{cfg: cfg, logger: logger}
}

func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) error {
	if !d.cfg.Enabled {
		d.logger.Info("Mail dispatch disabled; message not sent", "to", msg.To, "subject", msg.Subject)
		return nil
	}

	if d.cfg.Host == "" || d.cfg.Username == "" || d.cfg.Password == "" {
		return fmt.Errorf("mail dispatcher not properly configured")
	}

	payload := d.buildPayload(msg)

	addr := fmt.Sprintf("%s:%d", d.cfg.Host, d.cfg.Port)
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, d.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: d.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(d.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}

// buildPayload assembles a multipart/alternative message with a plain text
// part and, when provided, an HTML part.
func (d *SMTPDispatcher) buildPayload(msg Message) []byte {
	from := d.cfg.FromEmail
	if d.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", d.cfg.FromName, d.cfg.FromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", multipartBoundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", multipartBoundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.TextBody)
	b.WriteString("\r\n")

	if msg.HTMLBody != "" {
		fmt.Fprintf(&b, "--%s\r\n", multipartBoundary)
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(msg.HTMLBody)
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", multipartBoundary)

	return []byte(b.String())
}
