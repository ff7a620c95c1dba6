package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"portfolio-web/internal/api"
	"portfolio-web/internal/domain"
)

type mockMessageSender struct {
	calls int
	last  domain.ContactSubmission
	err   error
}

func (m *mockMessageSender) SendMessage(_ context.Context, submission domain.ContactSubmission) (api.Ack, error) {
	m.calls++
	m.last = submission
	if m.err != nil {
		return nil, m.err
	}
	return api.Ack(`{"message":"ok"}`), nil
}

type mockNotifier struct {
	calls int
	err   error
}

func (m *mockNotifier) SendContactNotification(_ context.Context, _ domain.ContactSubmission) error {
	m.calls++
	return m.err
}

func validSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{Name: " Ada ", Email: "ada@example.com", Message: "Hello!"}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		in    domain.ContactSubmission
		field string
	}{
		{"missing name", domain.ContactSubmission{Email: "a@b.co", Message: "x"}, "name"},
		{"missing email", domain.ContactSubmission{Name: "A", Message: "x"}, "email"},
		{"missing message", domain.ContactSubmission{Name: "A", Email: "a@b.co", Message: "   "}, "message"},
		{"invalid email", domain.ContactSubmission{Name: "A", Email: "not-an-email", Message: "x"}, "email"},
		{"display name email", domain.ContactSubmission{Name: "A", Email: "Ada <a@b.co>", Message: "x"}, "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation in chain")
			}
		})
	}

	out, err := Validate(validSubmission())
	if err != nil || out.Name != "Ada" {
		t.Fatalf("expected trimmed valid submission, got %+v %v", out, err)
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	sender := &mockMessageSender{}
	notifier := &mockNotifier{}
	svc := NewContactService(zap.NewNop(), sender, notifier)

	ack, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(ack) != `{"message":"ok"}` {
		t.Fatalf("unexpected ack %s", ack)
	}
	if sender.calls != 1 || sender.last.Name != "Ada" {
		t.Fatalf("expected one trimmed send, got %d %+v", sender.calls, sender.last)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected owner notification")
	}
}

func TestContactSubmitValidationSkipsBackend(t *testing.T) {
	sender := &mockMessageSender{}
	svc := NewContactService(zap.NewNop(), sender, nil)

	_, err := svc.Submit(context.Background(), domain.ContactSubmission{Name: "Ada"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if sender.calls != 0 {
		t.Fatalf("backend must not be called for invalid input")
	}
}

func TestContactSubmitTransportFailure(t *testing.T) {
	sender := &mockMessageSender{err: &api.TransportError{Message: "connection refused"}}
	notifier := &mockNotifier{}
	svc := NewContactService(zap.NewNop(), sender, notifier)

	_, err := svc.Submit(context.Background(), validSubmission())
	var te *api.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if notifier.calls != 0 {
		t.Fatalf("owner must not be notified when the backend failed")
	}
}

func TestContactSubmitNotifierFailureIsSoft(t *testing.T) {
	svc := NewContactService(zap.NewNop(), &mockMessageSender{}, &mockNotifier{err: errors.New("smtp down")})
	if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatalf("notifier failure must not fail the submission: %v", err)
	}
}

// hangingNotifier no responde hasta que ctx termina, como un servidor
// SMTP que acepta la conexion y nunca saluda.
type hangingNotifier struct{}

func (hangingNotifier) SendContactNotification(ctx context.Context, _ domain.ContactSubmission) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestContactSubmitNotifierIsBounded(t *testing.T) {
	svc := NewContactService(zap.NewNop(), &mockMessageSender{}, hangingNotifier{})
	svc.notifyTimeout = 50 * time.Millisecond

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), validSubmission())
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("accepted message must be reported as sent: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("submit blocked on the owner notification")
	}
}
