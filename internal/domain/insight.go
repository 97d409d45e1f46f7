package domain

// Períodos aceitos pelo filtro do dashboard. O agrupamento da série temporal
// continua sendo por data exata, o período é apenas repassado ao cliente.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// FilterSpec reúne os filtros selecionados no dashboard. Todos os valores são
// nomes de exibição; apenas plataformas são traduzidas para IDs.
type FilterSpec struct {
	StartDate string   `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Platforms []string `json:"platforms,omitempty" validate:"dive,required"`
	AgeGroups []string `json:"ageGroups,omitempty" validate:"dive,required"`
	Genders   []string `json:"genders,omitempty" validate:"dive,required"`
	Period    string   `json:"period,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
}

// HasDateRange indica se algum limite de data foi informado
func (f *FilterSpec) HasDateRange() bool {
	return f != nil && (f.StartDate != "" || f.EndDate != "")
}

// IsEmpty indica que nenhuma dimensão restringe os registros
func (f *FilterSpec) IsEmpty() bool {
	return f == nil ||
		(!f.HasDateRange() && len(f.Platforms) == 0 && len(f.AgeGroups) == 0 && len(f.Genders) == 0)
}

// DateRangeOnly devolve uma cópia contendo apenas o intervalo de datas
func (f *FilterSpec) DateRangeOnly() *FilterSpec {
	if f == nil {
		return nil
	}

	return &FilterSpec{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Period:    f.Period,
	}
}
