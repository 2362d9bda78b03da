package filter

import (
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// Fallbacks substituted when a record misses the field a threshold checks.
const (
	absentTMax   = -100.0
	absentPrecip = 0.0
	absentWind   = 0.0
)

// Apply returns the days passing every active criterion, preserving order.
// The input slice is never mutated.
func Apply(days []models.DayRecord, criteria models.FilterCriteria) []models.DayRecord {
	out := make([]models.DayRecord, 0, len(days))
	for _, day := range days {
		if includes(day, criteria) {
			out = append(out, day)
		}
	}
	return out
}

// includes runs the checks in a fixed order, bailing on the first failure:
// condition equality, then min tmax, min precipitation, min wind.
func includes(day models.DayRecord, c models.FilterCriteria) bool {
	if c.Condition != "" && c.Condition != models.ConditionAll && day.Condition != c.Condition {
		return false
	}
	if c.MinTMax != nil && orElse(day.TMax, absentTMax) < *c.MinTMax {
		return false
	}
	if c.MinPrecipMM != nil && orElse(day.PrecipMM, absentPrecip) < *c.MinPrecipMM {
		return false
	}
	if c.MinWindKMH != nil && orElse(day.WindKMH, absentWind) < *c.MinWindKMH {
		return false
	}
	return true
}

func orElse(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
