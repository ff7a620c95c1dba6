package domain

import "time"

type SkillType string

const (
	SkillTechnical SkillType = "technical"
	SkillTool      SkillType = "tool"
	SkillSoft      SkillType = "soft"
)

type Skill struct {
	ID                string    `json:"_id"`
	Name              string    `json:"name"`
	Type              SkillType `json:"type"`
	Category          string    `json:"category,omitempty"`
	Proficiency       int       `json:"proficiency"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	Description       string    `json:"description,omitempty"`
	Icon              string    `json:"icon,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
