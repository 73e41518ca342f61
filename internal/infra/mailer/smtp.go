// Package mailer delivers rendered email bodies, either over SMTP or to
// local files for previewing.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	mail "github.com/wneessen/go-mail"

	"github.com/gymsplit/notification-scheduler/internal/config"
	"github.com/gymsplit/notification-scheduler/internal/domain"
)

type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds a mailer from SMTP config. Port 465 switches to
// implicit TLS; everything else requires STARTTLS.
func NewSMTPMailer(cfg *config.SMTPConfig) (domain.Mailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, html string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		// One retry covers transient connection drops on long-idle runs.
		slog.WarnContext(ctx, "smtp send failed, retrying once",
			slog.String("to", to),
			slog.String("error", err.Error()))
		if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
			return fmt.Errorf("send mail to %s: %w", to, err)
		}
	}
	return nil
}
