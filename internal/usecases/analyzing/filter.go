package analyzing

import (
	"time"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
)

// Formatos aceitos para orderDate e para os limites do filtro
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseCalendarDate reduz o valor a um dia do calendário (meia-noite UTC).
// Timestamps com fuso mantêm o dia do próprio fuso.
func parseCalendarDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// compiledFilter guarda os conjuntos já resolvidos para não repetir a
// tradução a cada registro
type compiledFilter struct {
	start, end       time.Time
	hasStart, hasEnd bool
	platformIDs      map[string]bool
	filterPlatforms  bool
	ageGroups        map[string]bool
	genders          map[string]bool
}

func compileFilter(filter *domain.FilterSpec, dir *domain.Directory) *compiledFilter {
	cf := &compiledFilter{}
	if filter == nil {
		return cf
	}
	if dir == nil {
		dir = domain.NewDefaultDirectory()
	}

	if filter.StartDate != "" {
		cf.start, cf.hasStart = parseCalendarDate(filter.StartDate)
	}
	if filter.EndDate != "" {
		cf.end, cf.hasEnd = parseCalendarDate(filter.EndDate)
	}

	if len(filter.Platforms) > 0 {
		cf.filterPlatforms = true
		cf.platformIDs = toSet(dir.PlatformIDs(filter.Platforms))
	}
	if len(filter.AgeGroups) > 0 {
		cf.ageGroups = toSet(dir.AgeGroupIDs(filter.AgeGroups))
	}
	if len(filter.Genders) > 0 {
		cf.genders = toSet(dir.GenderIDs(filter.Genders))
	}

	return cf
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func (cf *compiledFilter) matches(record *domain.SalesRecord) bool {
	if cf.hasStart || cf.hasEnd {
		// Data inválida não exclui o registro: a comparação simplesmente não acontece
		if order, ok := parseCalendarDate(record.OrderDate); ok {
			if cf.hasStart && order.Before(cf.start) {
				return false
			}
			if cf.hasEnd && order.After(cf.end) {
				return false
			}
		}
	}

	if cf.filterPlatforms {
		linked := false
		for _, id := range record.PlatformCategory {
			if cf.platformIDs[id] {
				linked = true
				break
			}
		}
		if !linked {
			return false
		}
	}

	if cf.ageGroups != nil && !cf.ageGroups[record.AgeGroup] {
		return false
	}

	if cf.genders != nil && !cf.genders[record.Gender] {
		return false
	}

	return true
}

// Matches indica se o registro passa por todas as dimensões do filtro
func Matches(record domain.SalesRecord, filter *domain.FilterSpec, dir *domain.Directory) bool {
	return compileFilter(filter, dir).matches(&record)
}

// ApplyFilter devolve um novo slice com os registros aceitos, na ordem original
func ApplyFilter(records []domain.SalesRecord, filter *domain.FilterSpec, dir *domain.Directory) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	if filter.IsEmpty() {
		return append(filtered, records...)
	}

	cf := compileFilter(filter, dir)
	for i := range records {
		if cf.matches(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}

	return filtered
}
