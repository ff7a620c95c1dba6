package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"portfolio-web/internal/domain"
)

// DefaultBaseURL se usa cuando la configuracion no define API_BASE_URL.
const DefaultBaseURL = "http://localhost:5000/api"

// Endpoints expuestos por el backend del portafolio.
const (
	EndpointProfile    = "/profile"
	EndpointExperience = "/experience"
	EndpointProjects   = "/projects"
	EndpointSkills     = "/skills"
	EndpointContact    = "/contact"
)

// TransportError describe cualquier falla de red o HTTP contra el backend.
// Status es 0 cuando no hubo respuesta HTTP.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return "transport error: " + e.Message
	}
	return fmt.Sprintf("transport error: status=%d: %s", e.Status, e.Message)
}

// Ack es la respuesta cruda del backend a un envio de contacto.
type Ack = json.RawMessage

// Client es un wrapper tipado sobre la API REST del backend.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient construye un cliente apuntando a baseURL. Sin timeout propio:
// se usa el del transporte.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

// BaseURL devuelve la URL base resuelta al construir el cliente.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request emite method contra endpoint. body se serializa como JSON si no
// es nil y la respuesta se decodifica en out si no es nil. Toda falla se
// registra y se devuelve como *TransportError.
func (c *Client) Request(ctx context.Context, method, endpoint string, body, out any) error {
	err := c.do(ctx, method, endpoint, body, out)
	if err != nil {
		status := 0
		var te *TransportError
		if errors.As(err, &te) {
			status = te.Status
		}
		c.logger.Error("api request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Message: fmt.Sprintf("marshal request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), reader)
	if err != nil {
		return &TransportError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Message: fmt.Sprintf("do request: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= 400 {
		return &TransportError{Status: resp.StatusCode, Message: errorMessage(respBody, resp.Status)}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	// Un Ack acepta cualquier cuerpo 2xx; si no es JSON se guarda como string.
	if ack, ok := out.(*Ack); ok {
		*ack = rawAck(respBody)
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{Status: resp.StatusCode, Message: fmt.Sprintf("unmarshal response: %v", err)}
	}
	return nil
}

func rawAck(body []byte) Ack {
	trimmed := bytes.TrimSpace(body)
	if json.Valid(trimmed) {
		return append(Ack(nil), trimmed...)
	}
	quoted, _ := json.Marshal(string(trimmed))
	return quoted
}

func (c *Client) url(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

// errorMessage intenta extraer {"message": ...} o {"error": ...} del cuerpo.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

func (c *Client) GetProfile(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile
	err := c.Request(ctx, http.MethodGet, EndpointProfile, nil, &profile)
	return profile, err
}

func (c *Client) GetExperiences(ctx context.Context) ([]domain.Experience, error) {
	var experiences []domain.Experience
	err := c.Request(ctx, http.MethodGet, EndpointExperience, nil, &experiences)
	return experiences, err
}

func (c *Client) GetProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := c.Request(ctx, http.MethodGet, EndpointProjects, nil, &projects)
	return projects, err
}

func (c *Client) GetSkills(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill
	err := c.Request(ctx, http.MethodGet, EndpointSkills, nil, &skills)
	return skills, err
}

// SendMessage envia el formulario de contacto via POST /contact.
func (c *Client) SendMessage(ctx context.Context, submission domain.ContactSubmission) (Ack, error) {
	var ack Ack
	err := c.Request(ctx, http.MethodPost, EndpointContact, submission, &ack)
	return ack, err
}
