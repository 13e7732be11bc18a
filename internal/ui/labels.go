package ui

import (
	"slices"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/filter"
	"github.com/ngmaloney/ecowatch-terminal/internal/models"
)

func severityLabel(s models.AlertSeverity) string {
	switch s {
	case models.SeverityLow:
		return "Baixa"
	case models.SeverityMedium:
		return "Média"
	case models.SeverityHigh:
		return "Alta"
	case models.SeverityCritical:
		return "Crítica"
	case filter.All:
		return "Todas"
	}
	return string(s)
}

func typeLabel(t models.AlertType) string {
	switch t {
	case models.TypeVegetation:
		return "Vegetação"
	case models.TypeTemperature:
		return "Temperatura"
	case models.TypeMoisture:
		return "Umidade"
	case models.TypeFire:
		return "Incêndio"
	case models.TypeFlood:
		return "Inundação"
	case filter.All:
		return "Todos"
	}
	return string(t)
}

func statusLabel(s models.AlertStatus) string {
	switch s {
	case models.StatusActive:
		return "Ativo"
	case models.StatusInvestigating:
		return "Investigando"
	case models.StatusResolved:
		return "Resolvido"
	case filter.All:
		return "Todos"
	}
	return string(s)
}

func dateRangeLabel(r filter.DateRange) string {
	switch r {
	case filter.RangeDay:
		return "Último dia"
	case filter.RangeWeek:
		return "Últimos 7 dias"
	case filter.RangeMonth:
		return "Últimos 30 dias"
	case filter.RangeAllDates:
		return "Todo o período"
	}
	return string(r)
}

func periodLabel(p filter.Period) string {
	if p == filter.PeriodWeek {
		return "7 dias"
	}
	return "30 dias"
}

func vegetationLabel(v string) string {
	switch v {
	case models.VegetationDesert:
		return "Vegetação desértica"
	case models.VegetationSavanna:
		return "Savana"
	case models.VegetationForest:
		return "Floresta"
	case models.VegetationArid:
		return "Desértica"
	case filter.All:
		return "Todos"
	}
	return v
}

func riskLabel(r models.RiskLevel) string {
	if r == filter.All {
		return "Todos"
	}
	return r.Label()
}

// withAll prepends the "all" option to an enum's values
func withAll[S ~string](values []S) []S {
	return append([]S{filter.All}, values...)
}

// cycle returns the option after cur, wrapping around. Unknown values restart at the first option.
func cycle[S comparable](options []S, cur S) S {
	i := slices.Index(options, cur)
	return options[(i+1)%len(options)]
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
