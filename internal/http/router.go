package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares, templates y rutas.
func NewRouter(
	logger *zap.Logger,
	sessionCookie string,
	pageH *PageHandler,
	contactH *ContactHandler,
	themeH *ThemeHandler,
	clockH *ClockHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y sesion de navegacion.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), sessionMiddleware(sessionCookie))
	r.SetHTMLTemplate(loadTemplates())
	r.StaticFS("/static", staticFiles())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Paginas.
	r.GET("/", pageH.Home)
	r.GET("/experience", pageH.Experience)
	r.GET("/projects", pageH.Projects)
	r.GET("/skills", pageH.Skills)
	r.GET("/contact", contactH.Show)
	r.POST("/contact", contactH.Submit)

	// Proyecciones JSON.
	views := r.Group("/view", jsonContentTypeMiddleware())
	views.GET("/profile", pageH.ProfileJSON)
	views.GET("/experience", pageH.ExperienceJSON)
	views.GET("/projects", pageH.ProjectsJSON)
	views.GET("/skills", pageH.SkillsJSON)

	r.GET("/theme", themeH.Get)
	r.POST("/theme/toggle", themeH.Toggle)
	r.GET("/theme/stream", themeH.Stream)
	r.GET("/clock/stream", clockH.Stream)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
