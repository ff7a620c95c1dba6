package view

import (
	"fmt"
	"sort"
	"time"

	"portfolio-web/internal/domain"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01",
}

// ParseDate interpreta las fechas que devuelve el backend.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByStartDate ordena de forma estable y descendente por StartDate.
// Las fechas que no se pueden interpretar van al final.
func SortByStartDate(entries []domain.Experience) []domain.Experience {
	type keyed struct {
		entry domain.Experience
		start time.Time
		valid bool
	}
	items := make([]keyed, len(entries))
	for i, e := range entries {
		t, ok := ParseDate(e.StartDate)
		items[i] = keyed{entry: e, start: t, valid: ok}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].valid != items[j].valid {
			return items[i].valid
		}
		return items[i].start.After(items[j].start)
	})

	out := make([]domain.Experience, len(items))
	for i, item := range items {
		out[i] = item.entry
	}
	return out
}

// ExperienceBuckets agrupa el timeline por tipo.
type ExperienceBuckets struct {
	Work      []domain.Experience `json:"work"`
	Education []domain.Experience `json:"education"`
}

// PartitionExperiences separa trabajo y educacion; cada grupo se ordena
// por separado. Entradas con otro tipo no pertenecen a ningun grupo.
func PartitionExperiences(entries []domain.Experience) ExperienceBuckets {
	work := make([]domain.Experience, 0, len(entries))
	education := make([]domain.Experience, 0, len(entries))
	for _, e := range entries {
		switch e.Type {
		case domain.ExperienceWork:
			work = append(work, e)
		case domain.ExperienceEducation:
			education = append(education, e)
		}
	}
	return ExperienceBuckets{
		Work:      SortByStartDate(work),
		Education: SortByStartDate(education),
	}
}

// DateRange formatea el periodo como "3/2021 - 5/2023". Si la entrada es
// actual, EndDate se ignora y se muestra "present".
func DateRange(e domain.Experience) string {
	start := monthYear(e.StartDate)
	if e.Current {
		return start + " - present"
	}
	if e.EndDate == "" {
		return start
	}
	return start + " - " + monthYear(e.EndDate)
}

func monthYear(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return value
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}
