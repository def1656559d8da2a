package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sidvish/pitchweather/internal/models"
)

// notableDiffPct is the fixed cutoff between "similar" and a called-out
// difference in the comparative insights.
const notableDiffPct = 10.0

// BuildInsights writes the dashboard's insight sentences for a filtered
// subset. Rule-based and deterministic: the same rows always produce the
// same sentences in the same order. s must be Summarize(rows).
func BuildInsights(s Summary, rows []models.MergedRow) []string {
	if !s.HasData {
		return []string{"No matches found for the current filters."}
	}

	insights := medianSplit(rows)
	if line := bucketSpread(s.Buckets); line != "" {
		insights = append(insights, line)
	}
	if line := groupLeader(s.Groups); line != "" {
		insights = append(insights, line)
	}
	return insights
}

// medianSplit compares scoring on days at or above the median temperature
// with the cooler half.
func medianSplit(rows []models.MergedRow) []string {
	temps := make([]float64, len(rows))
	for i, row := range rows {
		temps[i] = row.TempC
	}
	sort.Float64s(temps)
	median := stat.Quantile(0.5, stat.Empirical, temps, nil)

	var hotter, cooler []float64
	for _, row := range rows {
		if row.TempC >= median {
			hotter = append(hotter, row.TotalRuns)
		} else {
			cooler = append(cooler, row.TotalRuns)
		}
	}

	lines := make([]string, 0, 2)
	if len(hotter) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Hotter match days (>= %.1f°C) averaged %.1f total runs (%s).",
			median, stat.Mean(hotter, nil), matchCount(len(hotter))))
	}
	if len(cooler) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Cooler match days (< %.1f°C) averaged %.1f total runs (%s).",
			median, stat.Mean(cooler, nil), matchCount(len(cooler))))
	}
	return lines
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// bucketSpread compares the hottest and coolest populated temperature
// buckets.
func bucketSpread(buckets []GroupSummary) string {
	if len(buckets) < 2 {
		return ""
	}
	coolest, hottest := buckets[0], buckets[len(buckets)-1]
	if coolest.MeanRuns == 0 {
		return ""
	}

	pct := (hottest.MeanRuns - coolest.MeanRuns) / coolest.MeanRuns * 100
	switch {
	case pct >= notableDiffPct:
		return fmt.Sprintf("Scoring in %s conditions ran %.0f%% higher than in %s conditions.",
			hottest.Label, pct, coolest.Label)
	case pct <= -notableDiffPct:
		return fmt.Sprintf("Scoring in %s conditions ran %.0f%% lower than in %s conditions.",
			hottest.Label, -pct, coolest.Label)
	default:
		return fmt.Sprintf("Scoring in %s and %s conditions was similar (within %.0f%%).",
			hottest.Label, coolest.Label, notableDiffPct)
	}
}

// groupLeader calls out the best weather group only when it clearly leads
// the worst one.
func groupLeader(groups []GroupSummary) string {
	if len(groups) < 2 {
		return ""
	}
	best, worst := groups[0], groups[len(groups)-1]
	if worst.MeanRuns == 0 {
		return ""
	}

	pct := (best.MeanRuns - worst.MeanRuns) / worst.MeanRuns * 100
	if pct < notableDiffPct {
		return ""
	}
	return fmt.Sprintf("%s days produced the highest scoring (avg %.1f total runs), %.0f%% above %s days.",
		best.Label, best.MeanRuns, pct, worst.Label)
}
