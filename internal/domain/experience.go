package domain

import "time"

type ExperienceType string

const (
	ExperienceWork      ExperienceType = "work"
	ExperienceEducation ExperienceType = "education"
)

// Experience es una entrada del timeline de trabajo o educacion.
// Si Current es true, EndDate se ignora.
type Experience struct {
	ID               string         `json:"_id"`
	Type             ExperienceType `json:"type"`
	Category         string         `json:"category,omitempty"`
	Title            string         `json:"title"`
	Organization     string         `json:"organization"`
	Location         string         `json:"location,omitempty"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate,omitempty"`
	Current          bool           `json:"current"`
	Description      string         `json:"description"`
	Achievements     []string       `json:"achievements,omitempty"`
	Technologies     []string       `json:"technologies,omitempty"`
	CertificationURL string         `json:"certificationUrl,omitempty"`
	Image            string         `json:"image,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
