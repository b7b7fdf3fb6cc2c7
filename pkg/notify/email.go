package notify

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/threatwatch/threatwatch/pkg/config"
)

// Message is a single outbound email
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
	Headers map[string]string // extra headers, e.g. List-Unsubscribe
}

//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// Sender delivers messages through a mail transport
type Sender interface {
	Send(msg Message) error
}

// SMTPSender sends messages through an SMTP submission endpoint. An
// empty host puts the sender in dry-run mode: messages are logged and
// reported as delivered, which keeps local development working without
// a mail account.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender creates a sender from notification config
func NewSMTPSender(cfg config.NotifyConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
	}
}

// Send delivers a single message and returns the transport error on failure
func (s *SMTPSender) Send(msg Message) error {
	payload := buildMIME(s.from, msg)

	if s.host == "" {
		lgr.Printf("[WARN] smtp host not configured, not sending email to %s (subject %q)", msg.To, msg.Subject)
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{msg.To}, payload); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	return nil
}

// buildMIME assembles a multipart/alternative message with text and
// HTML parts
func buildMIME(from string, msg Message) []byte {
	const boundary = "tw-alt-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")

	for key, value := range msg.Headers {
		fmt.Fprintf(&b, "%s: %s\r\n", key, value)
	}

	if msg.HTML == "" {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(msg.Text)
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
