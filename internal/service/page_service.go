package service

import (
	"context"

	"go.uber.org/zap"

	"portfolio-web/internal/domain"
	"portfolio-web/internal/loader"
	"portfolio-web/internal/view"
)

// Mensajes que ve el usuario cuando falla la carga de una pagina.
const (
	ProfileFailure    = "Failed to fetch profile"
	ExperienceFailure = "Failed to fetch experiences"
	ProjectsFailure   = "Failed to fetch projects"
	SkillsFailure     = "Failed to fetch skills"
)

// Backend son las lecturas que necesitan las paginas.
type Backend interface {
	GetProfile(ctx context.Context) (domain.Profile, error)
	GetExperiences(ctx context.Context) ([]domain.Experience, error)
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetSkills(ctx context.Context) ([]domain.Skill, error)
}

// Page es lo que recibe el template: estado, mensaje de error y la
// proyeccion derivada cuando el estado es Ready.
type Page[V any] struct {
	State loader.State
	Error string
	View  V
}

func (p Page[V]) Ready() bool { return p.State == loader.Ready }

func (p Page[V]) Failed() bool { return p.State == loader.Failed }

type HomeView struct {
	Profile     domain.Profile    `json:"profile"`
	SocialLinks []view.SocialLink `json:"social_links"`
}

// ExperienceItem agrega el periodo ya formateado.
type ExperienceItem struct {
	domain.Experience
	Period string `json:"period"`
}

type ExperienceView struct {
	Work      []ExperienceItem `json:"work"`
	Education []ExperienceItem `json:"education"`
}

type ProjectsView struct {
	Categories []domain.ProjectCategory `json:"categories"`
	Selected   domain.ProjectCategory   `json:"selected"`
	Projects   []domain.Project         `json:"projects"`
}

type SkillsView struct {
	Skills []domain.Skill    `json:"skills"`
	Groups []view.SkillGroup `json:"groups"`
}

// PageService monta un recurso por pagina, lo carga y lo proyecta.
type PageService struct {
	logger  *zap.Logger
	backend Backend
}

func NewPageService(logger *zap.Logger, backend Backend) *PageService {
	return &PageService{logger: logger, backend: backend}
}

// mount crea el recurso para una vista, lo carga y lo desmonta al salir.
func mount[T, V any](ctx context.Context, logger *zap.Logger, name, failure string, fetch func(context.Context) (T, error), project func(T) V) Page[V] {
	res := loader.New(loader.Fetcher[T](fetch),
		loader.WithName(name),
		loader.WithFailureMessage(failure),
		loader.WithLogger(logger),
	)
	defer res.Unmount()

	snap := res.Load(ctx)
	page := Page[V]{State: snap.State, Error: snap.Error}
	if snap.State == loader.Ready {
		page.View = project(snap.Data)
	}
	return page
}

func (s *PageService) Home(ctx context.Context) Page[HomeView] {
	return mount(ctx, s.logger, "profile", ProfileFailure, s.backend.GetProfile, func(p domain.Profile) HomeView {
		return HomeView{Profile: p, SocialLinks: view.SocialLinks(p)}
	})
}

// Contact carga el perfil para la lista de redes; si falla el formulario
// sigue disponible.
func (s *PageService) Contact(ctx context.Context) Page[HomeView] {
	return s.Home(ctx)
}

func (s *PageService) Experience(ctx context.Context) Page[ExperienceView] {
	return mount(ctx, s.logger, "experience", ExperienceFailure, s.backend.GetExperiences, func(entries []domain.Experience) ExperienceView {
		buckets := view.PartitionExperiences(entries)
		return ExperienceView{
			Work:      withPeriods(buckets.Work),
			Education: withPeriods(buckets.Education),
		}
	})
}

func withPeriods(entries []domain.Experience) []ExperienceItem {
	out := make([]ExperienceItem, len(entries))
	for i, e := range entries {
		out[i] = ExperienceItem{Experience: e, Period: view.DateRange(e)}
	}
	return out
}

// Projects filtra por category; valores desconocidos equivalen a "all".
func (s *PageService) Projects(ctx context.Context, category string) Page[ProjectsView] {
	selected := view.NormalizeCategory(category)
	return mount(ctx, s.logger, "projects", ProjectsFailure, s.backend.GetProjects, func(projects []domain.Project) ProjectsView {
		return ProjectsView{
			Categories: view.ProjectCategories(),
			Selected:   selected,
			Projects:   view.FilterProjects(projects, selected),
		}
	})
}

func (s *PageService) Skills(ctx context.Context) Page[SkillsView] {
	return mount(ctx, s.logger, "skills", SkillsFailure, s.backend.GetSkills, func(skills []domain.Skill) SkillsView {
		return SkillsView{
			Skills: view.SortSkills(skills),
			Groups: view.GroupSkillsByType(skills),
		}
	})
}
