package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-web/internal/service"
	"portfolio-web/internal/theme"
)

// PageHandler renderiza las paginas que se alimentan de la API.
type PageHandler struct {
	logger *zap.Logger
	pages  *service.PageService
	view   *renderer
}

func NewPageHandler(logger *zap.Logger, pages *service.PageService, registry *theme.Registry) *PageHandler {
	return &PageHandler{
		logger: logger,
		pages:  pages,
		view:   newRenderer(logger, registry),
	}
}

// Home maneja GET /.
func (h *PageHandler) Home(c *gin.Context) {
	page := h.pages.Home(c.Request.Context())
	h.view.html(c, pageStatus(page.State), "home.html", gin.H{"Title": "Home", "Page": page})
}

// Experience maneja GET /experience.
func (h *PageHandler) Experience(c *gin.Context) {
	page := h.pages.Experience(c.Request.Context())
	h.view.html(c, pageStatus(page.State), "experience.html", gin.H{"Title": "Experience", "Page": page})
}

// Projects maneja GET /projects?category=.
func (h *PageHandler) Projects(c *gin.Context) {
	page := h.pages.Projects(c.Request.Context(), c.Query("category"))
	h.view.html(c, pageStatus(page.State), "projects.html", gin.H{"Title": "Projects", "Page": page})
}

// Skills maneja GET /skills.
func (h *PageHandler) Skills(c *gin.Context) {
	page := h.pages.Skills(c.Request.Context())
	h.view.html(c, pageStatus(page.State), "skills.html", gin.H{"Title": "Skills", "Page": page})
}

func (h *PageHandler) ProfileJSON(c *gin.Context) {
	writeView(c, h.pages.Home(c.Request.Context()))
}

func (h *PageHandler) ExperienceJSON(c *gin.Context) {
	writeView(c, h.pages.Experience(c.Request.Context()))
}

func (h *PageHandler) ProjectsJSON(c *gin.Context) {
	writeView(c, h.pages.Projects(c.Request.Context(), c.Query("category")))
}

func (h *PageHandler) SkillsJSON(c *gin.Context) {
	writeView(c, h.pages.Skills(c.Request.Context()))
}

// writeView responde la proyeccion o el mensaje de error de la pagina.
func writeView[V any](c *gin.Context, page service.Page[V]) {
	if page.Failed() {
		c.JSON(http.StatusBadGateway, gin.H{"error": page.Error})
		return
	}
	c.JSON(http.StatusOK, page.View)
}
