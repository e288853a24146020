package mailer

import (
	"context"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/yash6314/invigilationMailService/config"
)

// SMTPMailer sends mail over SMTP. It satisfies service.MailTransport.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	senderName string
	logger     *zap.Logger
}

// NewSMTPMailer builds the SMTP transport from the mail configuration.
// The connection is dialed per send; the examination cell's volume is a
// few hundred messages per run at most.
func NewSMTPMailer(cfg *config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		senderName: cfg.SenderName,
		logger:     logger,
	}
}

// Send delivers one message with an HTML body and a plain-text fallback.
func (m *SMTPMailer) Send(ctx context.Context, from, to, subject, htmlBody, textBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", from, m.senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("smtp send failed", zap.String("to", to), zap.Error(err))
		return err
	}

	return nil
}
