package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-web/internal/domain"
	"portfolio-web/internal/service"
	"portfolio-web/internal/theme"
)

// ContactHandler sirve el formulario de contacto.
type ContactHandler struct {
	logger       *zap.Logger
	pages        *service.PageService
	contact      *service.ContactService
	view         *renderer
	dismissAfter time.Duration
}

func NewContactHandler(logger *zap.Logger, pages *service.PageService, contact *service.ContactService, registry *theme.Registry, dismissAfter time.Duration) *ContactHandler {
	return &ContactHandler{
		logger:       logger,
		pages:        pages,
		contact:      contact,
		view:         newRenderer(logger, registry),
		dismissAfter: dismissAfter,
	}
}

// Show maneja GET /contact.
func (h *ContactHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, domain.ContactSubmission{}, nil)
}

// Submit maneja POST /contact. Si el envio sale bien el formulario se
// vacia; si no, se conservan los valores escritos.
func (h *ContactHandler) Submit(c *gin.Context) {
	var form domain.ContactSubmission
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("invalid contact request", zap.Error(err))
		h.respond(c, http.StatusBadRequest, form, h.notice(domain.NoticeError, "invalid request"), nil)
		return
	}

	ack, err := h.contact.Submit(c.Request.Context(), form)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.respond(c, http.StatusBadRequest, form, h.notice(domain.NoticeError, verr.Message), gin.H{"field": verr.Field})
			return
		}
		h.logger.Error("send contact message failed", zap.Error(err))
		h.respond(c, http.StatusBadGateway, form, h.notice(domain.NoticeError, service.NoticeFailed), nil)
		return
	}

	h.respond(c, http.StatusOK, domain.ContactSubmission{}, h.notice(domain.NoticeSuccess, service.NoticeSent), gin.H{"ack": ack})
}

func (h *ContactHandler) notice(kind domain.NoticeKind, message string) *domain.Notice {
	return &domain.Notice{Kind: kind, Message: message, DismissAfter: h.dismissAfter}
}

func (h *ContactHandler) respond(c *gin.Context, status int, form domain.ContactSubmission, notice *domain.Notice, extra gin.H) {
	if wantsJSON(c) {
		body := gin.H{"notice": notice}
		if notice.Kind == domain.NoticeError {
			body["error"] = notice.Message
		}
		for k, v := range extra {
			body[k] = v
		}
		c.JSON(status, body)
		return
	}
	h.render(c, status, form, notice)
}

// render carga el perfil para la lista de redes; si falla, el formulario
// se muestra igual.
func (h *ContactHandler) render(c *gin.Context, status int, form domain.ContactSubmission, notice *domain.Notice) {
	page := h.pages.Contact(c.Request.Context())
	h.view.html(c, status, "contact.html", gin.H{
		"Title":  "Contact",
		"Page":   page,
		"Form":   form,
		"Notice": notice,
	})
}
