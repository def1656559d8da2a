package analysis

import (
	"slices"

	"github.com/sidvish/pitchweather/internal/models"
)

// Filter is one dashboard query. Axes combine with AND; values within an
// axis combine with OR. An empty set on an axis means "all". The team
// axis matches either side of the fixture, and the temperature range is
// inclusive at both ends.
type Filter struct {
	Seasons      []string
	Cities       []string
	Teams        []string
	TempMin      float64
	TempMax      float64
	HasTempRange bool
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return len(f.Seasons) == 0 && len(f.Cities) == 0 && len(f.Teams) == 0 && !f.HasTempRange
}

func (f Filter) matches(row models.MergedRow) bool {
	if len(f.Seasons) > 0 && !slices.Contains(f.Seasons, row.Season) {
		return false
	}
	if len(f.Cities) > 0 && !slices.Contains(f.Cities, row.City) {
		return false
	}
	if len(f.Teams) > 0 &&
		!slices.Contains(f.Teams, row.Team1) && !slices.Contains(f.Teams, row.Team2) {
		return false
	}
	if f.HasTempRange && (row.TempC < f.TempMin || row.TempC > f.TempMax) {
		return false
	}
	return true
}

// Apply returns the subset of rows satisfying every axis, in input order.
func Apply(rows []models.MergedRow, f Filter) []models.MergedRow {
	out := make([]models.MergedRow, 0, len(rows))
	for _, row := range rows {
		if f.matches(row) {
			out = append(out, row)
		}
	}
	return out
}
