package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	User     string
	Password string
}

// SMTPEmailDispatcher delivers via plain SMTP. Auth is skipped when no user
// is configured (local relay in dev).
type SMTPEmailDispatcher struct {
	cfg SMTPConfig
}

func NewSMTPEmailDispatcher(cfg SMTPConfig) *SMTPEmailDispatcher {
	return &SMTPEmailDispatcher{cfg: cfg}
}

func (d *SMTPEmailDispatcher) SendEmail(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", d.cfg.Host, d.cfg.Port)

	raw := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		d.cfg.From, msg.To, msg.Subject, msg.HTML,
	)

	var auth smtp.Auth

	if d.cfg.User != "" {
		auth = smtp.PlainAuth("", d.cfg.User, d.cfg.Password, d.cfg.Host)
	}

	err := smtp.SendMail(addr, auth, d.cfg.From, []string{msg.To}, []byte(raw))

	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
