package email

import (
	"context"
	"errors"

	"portfolio-web/internal/domain"
)

// Sender define la interfaz para avisar al dueño del sitio de un
// mensaje recibido por el formulario de contacto.
type Sender interface {
	SendContactNotification(ctx context.Context, submission domain.ContactSubmission) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendContactNotification(_ context.Context, _ domain.ContactSubmission) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
