package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tack/pkg/slogx"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends through an SMTP relay, dialing per message.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Text)
	if m.HTML != "" {
		msg.AddAlternative("text/html", m.HTML)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send %s: %w", m.Kind, err)
	}

	slogx.FromContext(ctx).Debug("email sent",
		slog.String("kind", m.Kind),
		slog.String("to", m.To),
	)
	return nil
}
