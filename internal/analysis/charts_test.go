package analysis

import (
	"testing"

	"github.com/sidvish/pitchweather/internal/models"
)

func TestBuildChartsScatter(t *testing.T) {
	rows := []models.MergedRow{
		mergedRow(t, "2023-04-01", "Mumbai", "2023", "MI", "CSK", 210, 35, "sunny"),
	}

	got := BuildCharts(rows, Summarize(rows))

	if len(got.Scatter) != 1 {
		t.Fatalf("Scatter = %d points, want 1", len(got.Scatter))
	}
	p := got.Scatter[0]
	if p.TempC != 35 || p.Runs != 210 || p.City != "Mumbai" {
		t.Errorf("scatter point = %+v", p)
	}
	if p.Teams != "MI vs CSK" {
		t.Errorf("Teams = %q, want %q", p.Teams, "MI vs CSK")
	}
	if p.Date != "2023-04-01" {
		t.Errorf("Date = %q, want ISO format", p.Date)
	}
}

func TestTrendLine(t *testing.T) {
	rows := []models.MergedRow{
		mergedRow(t, "2023-04-01", "Delhi", "2023", "DC", "MI", 100, 20, "sunny"),
		mergedRow(t, "2023-04-02", "Mumbai", "2023", "MI", "CSK", 200, 30, "sunny"),
	}

	got := BuildCharts(rows, Summarize(rows))

	if len(got.Trend) != 2 {
		t.Fatalf("Trend = %+v, want two endpoints", got.Trend)
	}
	lo, hi := got.Trend[0], got.Trend[1]
	if lo.TempC != 20 || hi.TempC != 30 {
		t.Errorf("trend spans (%v, %v), want the observed span (20, 30)", lo.TempC, hi.TempC)
	}
	// Two points define the fit exactly.
	if !floatEq(lo.Runs, 100) || !floatEq(hi.Runs, 200) {
		t.Errorf("trend endpoints = (%v, %v), want (100, 200)", lo.Runs, hi.Runs)
	}
}

func TestTrendLineSkipped(t *testing.T) {
	single := []models.MergedRow{
		mergedRow(t, "2023-04-01", "Mumbai", "2023", "MI", "CSK", 210, 35, "sunny"),
	}
	if got := BuildCharts(single, Summarize(single)); got.Trend != nil {
		t.Errorf("Trend = %+v for one point, want nil", got.Trend)
	}

	flat := []models.MergedRow{
		mergedRow(t, "2023-04-01", "Mumbai", "2023", "MI", "CSK", 210, 30, "sunny"),
		mergedRow(t, "2023-04-02", "Chennai", "2023", "CSK", "RR", 180, 30, "rain"),
	}
	if got := BuildCharts(flat, Summarize(flat)); got.Trend != nil {
		t.Errorf("Trend = %+v when every temperature coincides, want nil", got.Trend)
	}
}

func TestBuildTimeline(t *testing.T) {
	rows := []models.MergedRow{
		mergedRow(t, "2023-04-03", "Mumbai", "2023", "MI", "RR", 220, 34, "sunny"),
		mergedRow(t, "2023-04-01", "Mumbai", "2023", "MI", "CSK", 200, 32, "sunny"),
		mergedRow(t, "2023-04-01", "Chennai", "2023", "CSK", "DC", 160, 30, "humid"),
	}

	tl := BuildCharts(rows, Summarize(rows)).Timeline

	wantDates := []string{"2023-04-01", "2023-04-03"}
	if len(tl.Dates) != 2 || tl.Dates[0] != wantDates[0] || tl.Dates[1] != wantDates[1] {
		t.Fatalf("Dates = %v, want %v sorted ascending", tl.Dates, wantDates)
	}

	if len(tl.Runs) != 2 {
		t.Fatalf("Runs series = %d, want one per city", len(tl.Runs))
	}
	// Cities sorted: Chennai first.
	chennai, mumbai := tl.Runs[0], tl.Runs[1]
	if chennai.Name != "Chennai" || mumbai.Name != "Mumbai" {
		t.Fatalf("series order = %q, %q; want Chennai, Mumbai", chennai.Name, mumbai.Name)
	}

	if chennai.Values[0] == nil || *chennai.Values[0] != 160 {
		t.Errorf("Chennai 04-01 = %v, want 160", chennai.Values[0])
	}
	if chennai.Values[1] != nil {
		t.Errorf("Chennai 04-03 = %v, want nil (did not play)", *chennai.Values[1])
	}
	if mumbai.Values[0] == nil || *mumbai.Values[0] != 200 {
		t.Errorf("Mumbai 04-01 = %v, want 200", mumbai.Values[0])
	}
	if mumbai.Values[1] == nil || *mumbai.Values[1] != 220 {
		t.Errorf("Mumbai 04-03 = %v, want 220", mumbai.Values[1])
	}

	if len(tl.Temps) != 2 || tl.Temps[1].Values[1] == nil || *tl.Temps[1].Values[1] != 34 {
		t.Errorf("temperature panel missing or wrong: %+v", tl.Temps)
	}
}

func TestBuildTimelineAveragesSameDay(t *testing.T) {
	rows := []models.MergedRow{
		mergedRow(t, "2023-04-01", "Mumbai", "2023", "MI", "CSK", 100, 30, "sunny"),
		mergedRow(t, "2023-04-01", "Mumbai", "2023", "RR", "DC", 200, 30, "sunny"),
	}

	tl := BuildCharts(rows, Summarize(rows)).Timeline

	if len(tl.Runs) != 1 || len(tl.Runs[0].Values) != 1 {
		t.Fatalf("Timeline = %+v, want one city, one date", tl)
	}
	if got := tl.Runs[0].Values[0]; got == nil || *got != 150 {
		t.Errorf("double-header day = %v, want the 150 average", got)
	}
}

func TestBuildChartsBars(t *testing.T) {
	rows := []models.MergedRow{
		mergedRow(t, "2023-04-01", "Delhi", "2023", "DC", "MI", 140, 22, "cloudy"),
		mergedRow(t, "2023-04-02", "Mumbai", "2023", "MI", "CSK", 220, 36, "sunny"),
		mergedRow(t, "2023-04-03", "Chennai", "2023", "CSK", "RR", 180, 33, "humid"),
	}

	got := BuildCharts(rows, Summarize(rows))

	if len(got.BucketBars) != 3 {
		t.Fatalf("BucketBars = %+v, want 3", got.BucketBars)
	}
	if got.BucketBars[0].Label != "Cool (<=25)" || got.BucketBars[0].MeanRuns != 140 {
		t.Errorf("first bucket bar = %+v, want the coolest bucket", got.BucketBars[0])
	}

	if len(got.WeatherBars) != 3 {
		t.Fatalf("WeatherBars = %+v, want 3", got.WeatherBars)
	}
	if got.WeatherBars[0].Label != "Clear" || got.WeatherBars[0].MeanRuns != 220 {
		t.Errorf("first weather bar = %+v, want Clear on top (descending mean)", got.WeatherBars[0])
	}
}
