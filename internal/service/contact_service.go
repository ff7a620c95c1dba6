package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"portfolio-web/internal/api"
	"portfolio-web/internal/domain"
	"portfolio-web/internal/email"
)

var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// Textos de los avisos del formulario de contacto.
const (
	NoticeSent   = "Message sent successfully!"
	NoticeFailed = "Failed to send message. Please try again."
)

// ValidationError describe un campo invalido del formulario de contacto.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MessageSender es la parte del cliente de API que usa el formulario.
type MessageSender interface {
	SendMessage(ctx context.Context, submission domain.ContactSubmission) (api.Ack, error)
}

// ContactService valida y envia el formulario de contacto.
type ContactService struct {
	logger        *zap.Logger
	messages      MessageSender
	notifier      email.Sender
	notifyTimeout time.Duration
}

// DefaultNotifyTimeout acota el aviso al dueño; el backend ya acepto el
// mensaje y la respuesta al visitante no debe esperar mas que esto.
const DefaultNotifyTimeout = 5 * time.Second

func NewContactService(logger *zap.Logger, messages MessageSender, notifier email.Sender) *ContactService {
	if notifier == nil {
		notifier = email.NewDisabledSender("email sender not configured")
	}
	return &ContactService{
		logger:        logger,
		messages:      messages,
		notifier:      notifier,
		notifyTimeout: DefaultNotifyTimeout,
	}
}

// Validate normaliza los campos y verifica que esten completos.
func Validate(submission domain.ContactSubmission) (domain.ContactSubmission, error) {
	submission.Name = strings.TrimSpace(submission.Name)
	submission.Email = strings.TrimSpace(submission.Email)
	submission.Message = strings.TrimSpace(submission.Message)

	switch {
	case submission.Name == "":
		return submission, &ValidationError{Field: "name", Message: "Name is required"}
	case submission.Email == "":
		return submission, &ValidationError{Field: "email", Message: "Email is required"}
	case submission.Message == "":
		return submission, &ValidationError{Field: "message", Message: "Message is required"}
	}
	if err := validate.Var(submission.Email, "email"); err != nil {
		return submission, &ValidationError{Field: "email", Message: "Email is invalid"}
	}
	return submission, nil
}

// Submit envia el mensaje al backend una sola vez. El aviso por correo al
// dueño es de mejor esfuerzo: si falla solo se registra.
func (s *ContactService) Submit(ctx context.Context, submission domain.ContactSubmission) (api.Ack, error) {
	submission, err := Validate(submission)
	if err != nil {
		return nil, err
	}

	ack, err := s.messages.SendMessage(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("send contact message: %w", err)
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.notifier.SendContactNotification(notifyCtx, submission); err != nil {
		s.logger.Warn("owner notification failed", zap.Error(err))
	}
	return ack, nil
}
