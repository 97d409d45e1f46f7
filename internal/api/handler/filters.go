package handler

import (
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/vfg2006/furusato-dashboard-api/internal/domain"
	"github.com/vfg2006/furusato-dashboard-api/pkg/utils"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError descreve um parâmetro rejeitado pela validação
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value any    `json:"value,omitempty"`
}

// parseFilter lê os filtros da query string. Listas aceitam valores separados
// por vírgula e itens vazios são descartados.
func parseFilter(query url.Values) (*domain.FilterSpec, []FieldError) {
	filter := &domain.FilterSpec{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		Platforms: utils.SplitCSV(query.Get("platforms")),
		AgeGroups: utils.SplitCSV(query.Get("ageGroups")),
		Genders:   utils.SplitCSV(query.Get("genders")),
		Period:    query.Get("period"),
	}

	if err := validate.Struct(filter); err != nil {
		return nil, fieldErrors(err, filterFieldName)
	}

	return filter, nil
}

func fieldErrors(err error, nameOf func(string) string) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "query", Rule: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{
			Field: nameOf(fe.StructField()),
			Rule:  fe.Tag(),
			Value: fe.Value(),
		})
	}
	return out
}

// Nome do parâmetro na query string
func filterFieldName(field string) string {
	switch field {
	case "StartDate":
		return "startDate"
	case "EndDate":
		return "endDate"
	case "Platforms":
		return "platforms"
	case "AgeGroups":
		return "ageGroups"
	case "Genders":
		return "genders"
	case "Period":
		return "period"
	}
	return field
}

// PageParams são os parâmetros da listagem de vendas
type PageParams struct {
	Offset int    `validate:"gte=0"`
	Limit  int    `validate:"gte=0"`
	Query  string `validate:"max=200"`
}

func parsePage(query url.Values) (*PageParams, []FieldError) {
	params := &PageParams{Query: query.Get("q")}

	var errs []FieldError
	for _, p := range []struct {
		name   string
		target *int
	}{
		{"offset", &params.Offset},
		{"limit", &params.Limit},
	} {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: p.name, Rule: "numeric", Value: raw})
			continue
		}
		*p.target = n
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if err := validate.Struct(params); err != nil {
		return nil, fieldErrors(err, pageFieldName)
	}

	return params, nil
}

func pageFieldName(field string) string {
	switch field {
	case "Offset":
		return "offset"
	case "Limit":
		return "limit"
	case "Query":
		return "q"
	}
	return field
}
