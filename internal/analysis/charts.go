package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sidvish/pitchweather/internal/models"
)

// ScatterPoint is one match in the temperature/runs scatter, with the
// hover fields the dashboard shows.
type ScatterPoint struct {
	TempC float64 `json:"temp_c"`
	Runs  float64 `json:"runs"`
	City  string  `json:"city"`
	Venue string  `json:"venue,omitempty"`
	Teams string  `json:"teams,omitempty"`
	Date  string  `json:"date"`
}

// TrendPoint anchors the fitted line at one end of the observed
// temperature span.
type TrendPoint struct {
	TempC float64 `json:"temp_c"`
	Runs  float64 `json:"runs"`
}

// Series is one city's line in a timeline panel, aligned to
// Timeline.Dates with nulls on days the city did not play.
type Series struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

// Timeline carries the two date-ordered panels, one series per city.
type Timeline struct {
	Dates []string `json:"dates"`
	Runs  []Series `json:"runs"`
	Temps []Series `json:"temps"`
}

// Bar is one bar in a bucket or weather-group chart.
type Bar struct {
	Label    string  `json:"label"`
	MeanRuns float64 `json:"mean_runs"`
	Count    int     `json:"count"`
}

// Charts bundles every series the dashboard draws. This is plain data;
// rendering happens client side.
type Charts struct {
	Scatter     []ScatterPoint `json:"scatter"`
	Trend       []TrendPoint   `json:"trend"`
	Timeline    Timeline       `json:"timeline"`
	BucketBars  []Bar          `json:"bucket_bars"`
	WeatherBars []Bar          `json:"weather_bars"`
}

// BuildCharts shapes the chart series for rows. s must be Summarize(rows).
func BuildCharts(rows []models.MergedRow, s Summary) Charts {
	return Charts{
		Scatter:     scatterPoints(rows),
		Trend:       trendLine(rows),
		Timeline:    buildTimeline(rows),
		BucketBars:  bars(s.Buckets),
		WeatherBars: bars(s.Groups),
	}
}

func scatterPoints(rows []models.MergedRow) []ScatterPoint {
	points := make([]ScatterPoint, len(rows))
	for i, row := range rows {
		teams := ""
		if row.Team1 != "" && row.Team2 != "" {
			teams = row.Team1 + " vs " + row.Team2
		}
		points[i] = ScatterPoint{
			TempC: row.TempC,
			Runs:  row.TotalRuns,
			City:  row.City,
			Venue: row.Venue,
			Teams: teams,
			Date:  row.Date.Format("2006-01-02"),
		}
	}
	return points
}

// trendLine fits total runs against temperature (ordinary least squares)
// and returns the fitted line's endpoints. Skipped when fewer than two
// points exist or all temperatures coincide, where the slope is
// undefined.
func trendLine(rows []models.MergedRow) []TrendPoint {
	if len(rows) < 2 {
		return nil
	}

	temps := make([]float64, len(rows))
	runs := make([]float64, len(rows))
	minT, maxT := rows[0].TempC, rows[0].TempC
	for i, row := range rows {
		temps[i] = row.TempC
		runs[i] = row.TotalRuns
		if row.TempC < minT {
			minT = row.TempC
		}
		if row.TempC > maxT {
			maxT = row.TempC
		}
	}
	if minT == maxT {
		return nil
	}

	alpha, beta := stat.LinearRegression(temps, runs, nil, false)
	return []TrendPoint{
		{TempC: minT, Runs: alpha + beta*minT},
		{TempC: maxT, Runs: alpha + beta*maxT},
	}
}

// buildTimeline pivots rows into date-ordered per-city series. Cities
// and dates are sorted so the payload is stable; several matches on one
// city-day are averaged into a single point.
func buildTimeline(rows []models.MergedRow) Timeline {
	if len(rows) == 0 {
		return Timeline{}
	}

	type cell struct {
		runs  []float64
		temps []float64
	}
	cells := map[string]map[string]*cell{} // city, then date
	dateSet := map[string]bool{}

	for _, row := range rows {
		date := row.Date.Format("2006-01-02")
		dateSet[date] = true
		byDate := cells[row.City]
		if byDate == nil {
			byDate = map[string]*cell{}
			cells[row.City] = byDate
		}
		c := byDate[date]
		if c == nil {
			c = &cell{}
			byDate[date] = c
		}
		c.runs = append(c.runs, row.TotalRuns)
		c.temps = append(c.temps, row.TempC)
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	cities := make([]string, 0, len(cells))
	for c := range cells {
		cities = append(cities, c)
	}
	sort.Strings(cities)

	tl := Timeline{Dates: dates}
	for _, city := range cities {
		runsSeries := Series{Name: city, Values: make([]*float64, len(dates))}
		tempSeries := Series{Name: city, Values: make([]*float64, len(dates))}
		for i, date := range dates {
			if c, ok := cells[city][date]; ok {
				r := stat.Mean(c.runs, nil)
				tv := stat.Mean(c.temps, nil)
				runsSeries.Values[i] = &r
				tempSeries.Values[i] = &tv
			}
		}
		tl.Runs = append(tl.Runs, runsSeries)
		tl.Temps = append(tl.Temps, tempSeries)
	}
	return tl
}

func bars(groups []GroupSummary) []Bar {
	out := make([]Bar, len(groups))
	for i, g := range groups {
		out[i] = Bar{Label: g.Label, MeanRuns: g.MeanRuns, Count: g.Count}
	}
	return out
}
