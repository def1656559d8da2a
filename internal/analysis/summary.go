package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sidvish/pitchweather/internal/merge"
	"github.com/sidvish/pitchweather/internal/models"
)

// GroupSummary describes the matches sharing one temperature bucket or
// weather group.
type GroupSummary struct {
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	MeanRuns  float64 `json:"mean_runs"`
	MeanTempC float64 `json:"mean_temp_c"`
}

// Summary holds the headline numbers for a filtered subset. The zero
// value is the defined "no data" state: HasData false, every mean zero,
// never NaN.
type Summary struct {
	HasData      bool           `json:"has_data"`
	Count        int            `json:"count"`
	MeanRuns     float64        `json:"mean_runs"`
	MeanTempC    float64        `json:"mean_temp_c"`
	MeanHumidity float64        `json:"mean_humidity"`
	HumidityRows int            `json:"humidity_rows"`
	Buckets      []GroupSummary `json:"buckets"` // coolest to hottest, empty buckets omitted
	Groups       []GroupSummary `json:"groups"`  // by mean runs, descending
}

// Summarize computes the headline numbers for rows. Humidity averages
// only the rows that carry a value.
func Summarize(rows []models.MergedRow) Summary {
	if len(rows) == 0 {
		return Summary{}
	}

	runs := make([]float64, len(rows))
	temps := make([]float64, len(rows))
	var humidity []float64
	for i, row := range rows {
		runs[i] = row.TotalRuns
		temps[i] = row.TempC
		if row.Humidity != nil {
			humidity = append(humidity, *row.Humidity)
		}
	}

	s := Summary{
		HasData:      true,
		Count:        len(rows),
		MeanRuns:     stat.Mean(runs, nil),
		MeanTempC:    stat.Mean(temps, nil),
		HumidityRows: len(humidity),
		Buckets:      bucketSummaries(rows),
		Groups:       groupSummaries(rows),
	}
	if len(humidity) > 0 {
		s.MeanHumidity = stat.Mean(humidity, nil)
	}
	return s
}

func bucketSummaries(rows []models.MergedRow) []GroupSummary {
	byLabel := accumulate(rows, func(r models.MergedRow) string { return r.TempBucket })
	out := make([]GroupSummary, 0, len(byLabel))
	for _, b := range merge.BucketOrder {
		if g, ok := byLabel[string(b)]; ok {
			out = append(out, g)
		}
	}
	return out
}

func groupSummaries(rows []models.MergedRow) []GroupSummary {
	byLabel := accumulate(rows, func(r models.MergedRow) string { return r.WeatherGroup })
	out := make([]GroupSummary, 0, len(byLabel))
	for _, g := range byLabel {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRuns != out[j].MeanRuns {
			return out[i].MeanRuns > out[j].MeanRuns
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func accumulate(rows []models.MergedRow, key func(models.MergedRow) string) map[string]GroupSummary {
	runsByLabel := map[string][]float64{}
	tempsByLabel := map[string][]float64{}
	for _, row := range rows {
		k := key(row)
		runsByLabel[k] = append(runsByLabel[k], row.TotalRuns)
		tempsByLabel[k] = append(tempsByLabel[k], row.TempC)
	}

	out := make(map[string]GroupSummary, len(runsByLabel))
	for label, runs := range runsByLabel {
		out[label] = GroupSummary{
			Label:     label,
			Count:     len(runs),
			MeanRuns:  stat.Mean(runs, nil),
			MeanTempC: stat.Mean(tempsByLabel[label], nil),
		}
	}
	return out
}
