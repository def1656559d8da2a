package analysis

import (
	"sort"

	"github.com/sidvish/pitchweather/internal/models"
)

// Options lists the filter values present in the table so the dashboard
// can populate its controls. Temperature bounds are the observed span.
type Options struct {
	Seasons []string `json:"seasons"`
	Cities  []string `json:"cities"`
	Teams   []string `json:"teams"`
	TempMin float64  `json:"temp_min"`
	TempMax float64  `json:"temp_max"`
}

// BuildOptions scans the full table. Blank values (optional columns that
// were absent) are not offered as choices.
func BuildOptions(rows []models.MergedRow) Options {
	if len(rows) == 0 {
		return Options{Seasons: []string{}, Cities: []string{}, Teams: []string{}}
	}

	seasons := map[string]bool{}
	cities := map[string]bool{}
	teams := map[string]bool{}
	minT, maxT := rows[0].TempC, rows[0].TempC
	for _, row := range rows {
		if row.Season != "" {
			seasons[row.Season] = true
		}
		cities[row.City] = true
		if row.Team1 != "" {
			teams[row.Team1] = true
		}
		if row.Team2 != "" {
			teams[row.Team2] = true
		}
		if row.TempC < minT {
			minT = row.TempC
		}
		if row.TempC > maxT {
			maxT = row.TempC
		}
	}

	return Options{
		Seasons: sortedKeys(seasons),
		Cities:  sortedKeys(cities),
		Teams:   sortedKeys(teams),
		TempMin: minT,
		TempMax: maxT,
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
