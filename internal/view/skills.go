package view

import (
	"math"
	"sort"

	"portfolio-web/internal/domain"
)

var skillPriority = map[domain.SkillType]int{
	domain.SkillTechnical: 1,
	domain.SkillTool:      2,
	domain.SkillSoft:      3,
}

// SkillPriority devuelve la clave de orden de un tipo; desconocido = +inf.
func SkillPriority(t domain.SkillType) int {
	if p, ok := skillPriority[t]; ok {
		return p
	}
	return math.MaxInt
}

// SortSkills ordena de forma estable por prioridad de tipo.
func SortSkills(skills []domain.Skill) []domain.Skill {
	out := make([]domain.Skill, len(skills))
	copy(out, skills)
	sort.SliceStable(out, func(i, j int) bool {
		return SkillPriority(out[i].Type) < SkillPriority(out[j].Type)
	})
	return out
}

type SkillGroup struct {
	Type   domain.SkillType `json:"type"`
	Skills []domain.Skill   `json:"skills"`
}

// GroupSkillsByType agrupa en el orden de prioridad; los tipos
// desconocidos quedan al final en orden de aparicion.
func GroupSkillsByType(skills []domain.Skill) []SkillGroup {
	groups := make([]SkillGroup, 0)
	index := make(map[domain.SkillType]int)
	for _, s := range SortSkills(skills) {
		i, ok := index[s.Type]
		if !ok {
			i = len(groups)
			index[s.Type] = i
			groups = append(groups, SkillGroup{Type: s.Type})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
