package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-web/internal/domain"
	"portfolio-web/internal/loader"
	"portfolio-web/internal/theme"
	"portfolio-web/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templateFuncs = template.FuncMap{
	"join":       strings.Join,
	"themeLabel": themeLabel,
	"imageOr":    imageOr,
}

func imageOr(src, kind string) string {
	return view.ImageOr(src, view.ImageKind(kind))
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// renderer agrega el tema de la sesion a cada pagina HTML.
type renderer struct {
	logger   *zap.Logger
	registry *theme.Registry
}

func newRenderer(logger *zap.Logger, registry *theme.Registry) *renderer {
	return &renderer{logger: logger, registry: registry}
}

func (r *renderer) html(c *gin.Context, status int, name string, data gin.H) {
	store, release := r.registry.Acquire(c.Request.Context(), sessionID(c))
	defer release()

	data["Theme"] = store.Get()
	data["Path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}

// pageStatus traduce el estado de carga a un codigo HTTP.
func pageStatus(state loader.State) int {
	if state == loader.Failed {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

// wantsJSON indica si el cliente prefiere JSON sobre HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func themeLabel(mode domain.ThemeMode) string {
	if mode == domain.ThemeDark {
		return "Light mode"
	}
	return "Dark mode"
}
