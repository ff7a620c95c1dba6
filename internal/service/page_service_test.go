package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"portfolio-web/internal/domain"
	"portfolio-web/internal/loader"
)

type mockBackend struct {
	profile     domain.Profile
	experiences []domain.Experience
	projects    []domain.Project
	skills      []domain.Skill
	err         error
}

func (m *mockBackend) GetProfile(context.Context) (domain.Profile, error) {
	return m.profile, m.err
}

func (m *mockBackend) GetExperiences(context.Context) ([]domain.Experience, error) {
	return m.experiences, m.err
}

func (m *mockBackend) GetProjects(context.Context) ([]domain.Project, error) {
	return m.projects, m.err
}

func (m *mockBackend) GetSkills(context.Context) ([]domain.Skill, error) {
	return m.skills, m.err
}

func TestPageServiceExperience(t *testing.T) {
	backend := &mockBackend{experiences: []domain.Experience{
		{ID: "w1", Type: domain.ExperienceWork, StartDate: "2021-01-01", EndDate: "2022-06-01"},
		{ID: "e1", Type: domain.ExperienceEducation, StartDate: "2020-01-01", Current: true},
		{ID: "w2", Type: domain.ExperienceWork, StartDate: "2023-01-01", Current: true},
	}}
	svc := NewPageService(zap.NewNop(), backend)

	page := svc.Experience(context.Background())
	if !page.Ready() {
		t.Fatalf("expected ready page, got %v", page.State)
	}
	if len(page.View.Work) != 2 || page.View.Work[0].ID != "w2" || page.View.Work[1].ID != "w1" {
		t.Fatalf("unexpected work bucket %+v", page.View.Work)
	}
	if page.View.Work[0].Period != "1/2023 - present" || page.View.Work[1].Period != "1/2021 - 6/2022" {
		t.Fatalf("unexpected periods %q %q", page.View.Work[0].Period, page.View.Work[1].Period)
	}
	if len(page.View.Education) != 1 {
		t.Fatalf("unexpected education bucket %+v", page.View.Education)
	}
}

func TestPageServiceFailureUsesUserFacingMessage(t *testing.T) {
	svc := NewPageService(zap.NewNop(), &mockBackend{err: errors.New("dial tcp: connection refused")})

	skills := svc.Skills(context.Background())
	if !skills.Failed() || skills.Error != SkillsFailure {
		t.Fatalf("unexpected skills page %+v", skills)
	}
	projects := svc.Projects(context.Background(), "all")
	if projects.State != loader.Failed || projects.Error != ProjectsFailure {
		t.Fatalf("unexpected projects page %+v", projects)
	}
	if len(projects.View.Projects) != 0 {
		t.Fatalf("failed page must not carry a projection")
	}
	home := svc.Home(context.Background())
	if home.Error != ProfileFailure {
		t.Fatalf("unexpected home error %q", home.Error)
	}
}

func TestPageServiceProjectsFilter(t *testing.T) {
	backend := &mockBackend{projects: []domain.Project{
		{ID: "1", Category: domain.CategoryIOS},
		{ID: "2", Category: domain.CategoryUXUI},
		{ID: "3", Category: domain.CategoryIOS},
	}}
	svc := NewPageService(zap.NewNop(), backend)

	page := svc.Projects(context.Background(), "iOS App")
	if page.View.Selected != domain.CategoryIOS || len(page.View.Projects) != 2 {
		t.Fatalf("unexpected filtered page %+v", page.View)
	}
	if len(page.View.Categories) != 6 {
		t.Fatalf("expected filter bar with 6 entries")
	}

	page = svc.Projects(context.Background(), "Games")
	if page.View.Selected != domain.CategoryAll || len(page.View.Projects) != 3 {
		t.Fatalf("unknown category must show everything, got %+v", page.View)
	}
}

func TestPageServiceSkillsAndHome(t *testing.T) {
	backend := &mockBackend{
		skills: []domain.Skill{{Name: "Teamwork", Type: domain.SkillSoft}, {Name: "Go", Type: domain.SkillTechnical}},
		profile: domain.Profile{Name: "Ada", SocialLinks: domain.SocialLinks{
			"linkedin": "https://linkedin.com/in/ada",
			"github":   "https://github.com/ada",
		}},
	}
	svc := NewPageService(zap.NewNop(), backend)

	skills := svc.Skills(context.Background())
	if skills.View.Skills[0].Name != "Go" || len(skills.View.Groups) != 2 {
		t.Fatalf("unexpected skills view %+v", skills.View)
	}
	home := svc.Contact(context.Background())
	if home.View.Profile.Name != "Ada" || home.View.SocialLinks[0].Platform != "github" {
		t.Fatalf("unexpected home view %+v", home.View)
	}
}
