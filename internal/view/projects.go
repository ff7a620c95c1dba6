package view

import "portfolio-web/internal/domain"

// FilterProjects devuelve la lista completa para "all" y, si no, la
// subsecuencia con esa categoria en el orden original.
func FilterProjects(projects []domain.Project, category domain.ProjectCategory) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if category == domain.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProjectCategories es la barra de filtros: "all" y las cinco categorias.
func ProjectCategories() []domain.ProjectCategory {
	out := make([]domain.ProjectCategory, 0, len(domain.ProjectCategories)+1)
	out = append(out, domain.CategoryAll)
	return append(out, domain.ProjectCategories...)
}

// NormalizeCategory mapea valores vacios o desconocidos a "all".
func NormalizeCategory(value string) domain.ProjectCategory {
	c := domain.ProjectCategory(value)
	if c == "" || !c.Valid() {
		return domain.CategoryAll
	}
	return c
}
