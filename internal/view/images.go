package view

// ImageKind selecciona la imagen de reemplazo.
type ImageKind string

const (
	ImageProfile ImageKind = "profile"
	ImageProject ImageKind = "project"
	ImageSkill   ImageKind = "skill"
)

var placeholders = map[ImageKind]string{
	ImageProfile: "/static/images/profile-placeholder.svg",
	ImageProject: "/static/images/project-placeholder.svg",
	ImageSkill:   "/static/images/skill-placeholder.svg",
}

// PlaceholderImage devuelve la imagen por defecto de kind.
func PlaceholderImage(kind ImageKind) string {
	return placeholders[kind]
}

// ImageOr devuelve src o, si esta vacio, el placeholder de kind.
func ImageOr(src string, kind ImageKind) string {
	if src != "" {
		return src
	}
	return PlaceholderImage(kind)
}
