package mailer

import "errors"

var (
	// ErrNotConfigured is returned when the EmailJS identifiers are missing
	// from the configuration.
	ErrNotConfigured = errors.New("email service is not configured")

	// ErrServiceNotFound is returned when the provider does not know the
	// configured service id.
	ErrServiceNotFound = errors.New("email service not found")

	// ErrTemplateNotFound is returned when the provider does not know the
	// configured template id.
	ErrTemplateNotFound = errors.New("email template not found")

	// ErrAuthFailed is returned when the provider rejects the public key.
	ErrAuthFailed = errors.New("email service authentication failed")

	// ErrProviderUnreachable is returned when the provider cannot be reached at all.
	ErrProviderUnreachable = errors.New("email provider unreachable")

	// ErrSendFailed is returned for any other provider rejection.
	ErrSendFailed = errors.New("failed to send email")
)
