package http

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-web/internal/clock"
)

// ClockHandler transmite el reloj de la barra de navegacion.
type ClockHandler struct {
	logger  *zap.Logger
	display *clock.Display
}

func NewClockHandler(logger *zap.Logger, display *clock.Display) *ClockHandler {
	return &ClockHandler{logger: logger, display: display}
}

// Stream maneja GET /clock/stream?lat=&lon=. Sin coordenadas validas el
// reloj sigue funcionando y el lugar queda como no disponible.
func (h *ClockHandler) Stream(c *gin.Context) {
	var coords *clock.Coordinates
	if lat, lon := c.Query("lat"), c.Query("lon"); lat != "" || lon != "" {
		parsed, err := clock.ParseCoordinates(lat, lon)
		if err != nil {
			h.logger.Debug("ignoring coordinates", zap.Error(err))
		} else {
			coords = parsed
		}
	}

	frames := h.display.Stream(c.Request.Context(), coords)
	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		frame, ok := <-frames
		if !ok {
			return false
		}
		c.SSEvent("clock", frame)
		return true
	})
}
