package domain

import "time"

type ProjectCategory string

const (
	CategoryAll            ProjectCategory = "all"
	CategoryAndroid        ProjectCategory = "Android App"
	CategoryIOS            ProjectCategory = "iOS App"
	CategoryCrossPlatform  ProjectCategory = "Cross-platform App"
	CategoryWebDevelopment ProjectCategory = "Web development"
	CategoryUXUI           ProjectCategory = "UX/UI"
)

// ProjectCategories lista las categorias reales (sin el centinela "all").
var ProjectCategories = []ProjectCategory{
	CategoryAndroid,
	CategoryIOS,
	CategoryCrossPlatform,
	CategoryWebDevelopment,
	CategoryUXUI,
}

// Valid indica si c es una categoria conocida o el centinela "all".
func (c ProjectCategory) Valid() bool {
	if c == CategoryAll {
		return true
	}
	for _, known := range ProjectCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Project struct {
	ID           string          `json:"_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Image        string          `json:"image,omitempty"`
	Technologies []string        `json:"technologies"`
	GithubURL    string          `json:"githubUrl,omitempty"`
	LiveURL      string          `json:"liveUrl,omitempty"`
	Category     ProjectCategory `json:"category"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
