package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"portfolio-web/internal/domain"
)

// DefaultSendTimeout limita un envio cuando ctx no trae deadline.
const DefaultSendTimeout = 10 * time.Second

// SMTPSender envia correos via SMTP.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	to       string
	useTLS   bool
}

func NewSMTPSender(host string, port int, username, password, from, fromName, to string, useTLS bool) (*SMTPSender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("smtp from is required")
	}
	if strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("owner email is required")
	}
	if port == 0 {
		port = 587
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		to:       to,
		useTLS:   useTLS,
	}, nil
}

// SendContactNotification avisa al dueño del sitio. La conexion sigue la
// cancelacion y el deadline de ctx; sin deadline se usa DefaultSendTimeout.
func (s *SMTPSender) SendContactNotification(ctx context.Context, submission domain.ContactSubmission) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", sanitizeHeader(submission.Name))
	body := buildBody(submission)
	msg := buildMessage(s.from, s.fromName, s.to, sanitizeHeader(submission.Email), subject, body)
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultSendTimeout)
		defer cancel()
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	// Cerrar la conexion desbloquea cualquier lectura pendiente.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	tlsConfig := &tls.Config{ServerName: s.host}
	if s.useTLS {
		tlsConn := tls.Client(conn, tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			return fmt.Errorf("smtp tls handshake: %w", err)
		}
		conn = tlsConn
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer client.Close()

	if !s.useTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return err
			}
		}
	}
	if s.username != "" {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return err
		}
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(s.to); err != nil {
		return err
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func buildBody(submission domain.ContactSubmission) string {
	return fmt.Sprintf(
		"New contact form submission from your portfolio:\n\nName: %s\nEmail: %s\nMessage:\n%s\n\n---\nSent from your portfolio contact form\n",
		submission.Name,
		submission.Email,
		submission.Message,
	)
}

// sanitizeHeader evita inyectar cabeceras con saltos de linea.
func sanitizeHeader(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(value))
}

func buildMessage(from, fromName, to, replyTo, subject, body string) string {
	fromHeader := from
	if strings.TrimSpace(fromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", fromName, from)
	}

	headers := []string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
	}
	if replyTo != "" {
		headers = append(headers, fmt.Sprintf("Reply-To: %s", replyTo))
	}
	headers = append(headers,
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	)

	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}
