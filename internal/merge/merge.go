package merge

import (
	"strings"
	"time"

	"github.com/sidvish/pitchweather/internal/models"
)

// joinKey normalizes the (city, date) pair both tables share. Cities
// compare case-insensitively; dates compare by calendar day.
func joinKey(city string, date time.Time) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + date.Format("2006-01-02")
}

// Prepare inner-joins match results with weather observations on
// (city, date) and derives the categorical fields on every row. Rows
// whose key appears on only one side are dropped. When a key repeats,
// every match/weather combination is emitted: matches in input order,
// and for each match its weather rows in input order, so identical
// inputs always produce the identical table.
func Prepare(weather []models.WeatherRecord, matches []models.MatchRecord) []models.MergedRow {
	byKey := make(map[string][]models.WeatherRecord, len(weather))
	for _, w := range weather {
		k := joinKey(w.City, w.Date)
		byKey[k] = append(byKey[k], w)
	}

	rows := make([]models.MergedRow, 0, len(matches))
	for _, m := range matches {
		for _, w := range byKey[joinKey(m.City, m.Date)] {
			rows = append(rows, models.MergedRow{
				Date:         m.Date,
				City:         m.City,
				Season:       m.Season,
				Team1:        m.Team1,
				Team2:        m.Team2,
				Venue:        m.Venue,
				TotalRuns:    m.TotalRuns,
				TempC:        w.TempC,
				Humidity:     w.Humidity,
				WeatherType:  w.WeatherType,
				TempBucket:   string(BucketTemp(w.TempC)),
				WeatherGroup: string(GroupWeatherType(w.WeatherType)),
			})
		}
	}
	return rows
}
