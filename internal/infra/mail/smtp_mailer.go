// Package mail implements transactional mail delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"memoria/config"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/service"
	"memoria/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements service.Mailer with the go-mail SMTP client.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail.host is not configured")
	}

	client, err := gomail.NewClient(cfg.Mail.Host,
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Mail.Username),
		gomail.WithPassword(cfg.Mail.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

// SendVerificationMail delivers the verify-email link to a new user.
func (m *smtpMailer) SendVerificationMail(ctx context.Context, name, email, verifyURL string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid mail sender")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "invalid mail recipient")
	}

	msg.Subject("Verify your email")
	msg.SetBodyString(gomail.TypeTextHTML, verificationBody(name, verifyURL))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "verification mail delivery failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)

		return domainerrors.ErrMailSendFailed.WrapMessage("failed to send verification email")
	}

	return nil
}

func verificationBody(name, verifyURL string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome to Memoria. Please confirm your email address to activate your account:</p>
<p><a href=%q>Verify my email</a></p>
<p>This link expires in one hour. If you did not sign up, you can safely ignore this message.</p>`,
		name, verifyURL)
}
