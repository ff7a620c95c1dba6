package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-web/internal/domain"
	"portfolio-web/internal/theme"
)

// ThemeHandler expone el modo de tema de la sesion.
type ThemeHandler struct {
	logger   *zap.Logger
	registry *theme.Registry
}

func NewThemeHandler(logger *zap.Logger, registry *theme.Registry) *ThemeHandler {
	return &ThemeHandler{logger: logger, registry: registry}
}

// Get maneja GET /theme.
func (h *ThemeHandler) Get(c *gin.Context) {
	store, release := h.registry.Acquire(c.Request.Context(), sessionID(c))
	defer release()
	c.JSON(http.StatusOK, gin.H{"mode": store.Get()})
}

// Toggle maneja POST /theme/toggle. El cambio se aplica aunque falle la
// persistencia.
func (h *ThemeHandler) Toggle(c *gin.Context) {
	store, release := h.registry.Acquire(c.Request.Context(), sessionID(c))
	defer release()

	mode, err := store.Toggle(c.Request.Context())
	if err != nil {
		h.logger.Warn("theme not persisted", zap.String("mode", string(mode)), zap.Error(err))
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"mode": mode})
		return
	}
	c.Redirect(http.StatusSeeOther, returnPath(c.PostForm("return_to")))
}

// Stream maneja GET /theme/stream: envia el modo actual y luego cada
// cambio mientras la conexion siga abierta.
func (h *ThemeHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	store, release := h.registry.Acquire(ctx, sessionID(c))
	defer release()

	updates := make(chan domain.ThemeMode, 1)
	unsubscribe := store.Subscribe(func(mode domain.ThemeMode) {
		// Solo importa el ultimo modo.
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- mode:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	sent := false
	c.Stream(func(w io.Writer) bool {
		if !sent {
			sent = true
			c.SSEvent("theme", string(store.Get()))
			return true
		}
		select {
		case mode := <-updates:
			c.SSEvent("theme", string(mode))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// returnPath acepta solo rutas locales.
func returnPath(value string) string {
	if !strings.HasPrefix(value, "/") || strings.HasPrefix(value, "//") {
		return "/"
	}
	return value
}
