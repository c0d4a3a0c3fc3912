package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/kaffeekasse/coffeebilling/internal/config"
)

// Sender delivers a single mail. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP sender, or a logging sender when no SMTP host is
// configured so the application stays usable in development.
func New(cfg *config.Config) Sender {
	if cfg.SMTPHost == "" {
		zap.L().Info("SMTP host not configured, mails are logged only")
		return &LogSender{}
	}

	return &SMTPSender{
		addr:    fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth:    smtp.PlainAuth("", cfg.SMTPLogin, cfg.SMTPPassword, cfg.SMTPHost),
		from:    cfg.SMTPFrom,
		replyTo: cfg.SMTPReplyTo,
	}
}

type SMTPSender struct {
	addr    string
	auth    smtp.Auth
	from    string
	replyTo string
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	if s.replyTo != "" {
		msg.WriteString("Reply-To: " + s.replyTo + "\r\n")
	}
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		zap.L().Error("failed to send mail", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("smtp send failed: %w", err)
	}
	zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// LogSender logs mails instead of sending them.
type LogSender struct{}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	zap.L().Info("mail (not sent)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
