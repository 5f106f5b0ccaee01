package service

import "context"

// Mailer sends transactional mail. Only the verification flow needs it.
type Mailer interface {
	// SendVerificationMail delivers the verify-email link to a new user.
	SendVerificationMail(ctx context.Context, name, email, verifyURL string) error
}
