package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"newsbrief/internal/ports"
)

// SMTPSender delivers HTML digests over plain SMTP with PLAIN auth.
type SMTPSender struct {
	host       string
	port       int
	user       string
	password   string
	from       string
	recipients []string
	send       sendFunc
}

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

var _ ports.Notifier = (*SMTPSender)(nil)

func NewSMTPSender(host string, port int, user, password, from string, recipients []string) *SMTPSender {
	return &SMTPSender{
		host:       host,
		port:       port,
		user:       user,
		password:   password,
		from:       from,
		recipients: recipients,
		send:       smtp.SendMail,
	}
}

// SendDigest sends one HTML email to every configured recipient.
func (s *SMTPSender) SendDigest(ctx context.Context, subject, htmlBody string) error {
	if len(s.recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := s.buildMessage(subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)

	if err := s.send(addr, auth, s.from, s.recipients, msg); err != nil {
		return fmt.Errorf("send digest email: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(s.recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
