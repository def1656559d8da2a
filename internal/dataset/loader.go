package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sidvish/pitchweather/internal/models"
)

var (
	weatherRequired = []string{"date", "city", "temp_c"}
	matchesRequired = []string{"date", "city", "total_runs"}
)

// header locates columns by name: lowercased, trimmed, BOM stripped.
// Column order in the file does not matter.
type header map[string]int

func readHeader(rec []string) header {
	h := make(header, len(rec))
	for i, name := range rec {
		name = strings.TrimPrefix(name, "\ufeff")
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h
}

func (h header) cell(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func readRows(r io.Reader, table string, required []string) ([][]string, header, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s csv: %w", table, err)
	}

	h := header{}
	if len(rows) > 0 {
		h = readHeader(rows[0])
	}
	for _, col := range required {
		if _, ok := h[col]; !ok {
			return nil, nil, missingColumn(table, col)
		}
	}
	if len(rows) == 0 {
		return nil, h, nil
	}
	return rows[1:], h, nil
}

// ParseWeather reads weather observations. Required columns: date, city,
// temp_c. Optional: humidity (nil when blank or absent) and weather_type
// ("Unknown" when blank or absent). Rows whose date fails every known
// layout are dropped; non-parsing numeric cells are SchemaErrors. Row
// order is preserved.
func ParseWeather(r io.Reader) ([]models.WeatherRecord, error) {
	rows, h, err := readRows(r, TableWeather, weatherRequired)
	if err != nil {
		return nil, err
	}

	_, hasHumidity := h["humidity"]
	_, hasType := h["weather_type"]

	records := make([]models.WeatherRecord, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		date, ok := ParseDate(h.cell(row, "date"))
		if !ok {
			continue
		}
		city := h.cell(row, "city")
		if city == "" {
			continue
		}

		tempCell := h.cell(row, "temp_c")
		temp, err := strconv.ParseFloat(tempCell, 64)
		if err != nil {
			return nil, badNumber(TableWeather, "temp_c", rowNum, tempCell)
		}

		rec := models.WeatherRecord{
			Date:        date,
			City:        city,
			TempC:       temp,
			WeatherType: "Unknown",
		}
		if hasHumidity {
			if cell := h.cell(row, "humidity"); cell != "" {
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, badNumber(TableWeather, "humidity", rowNum, cell)
				}
				rec.Humidity = &v
			}
		}
		if hasType {
			if cell := h.cell(row, "weather_type"); cell != "" {
				rec.WeatherType = cell
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseMatches reads match results. Required columns: date, city,
// total_runs. Optional: season, team1, team2, venue (empty string when
// blank or absent). Same date and numeric handling as ParseWeather.
func ParseMatches(r io.Reader) ([]models.MatchRecord, error) {
	rows, h, err := readRows(r, TableMatches, matchesRequired)
	if err != nil {
		return nil, err
	}

	records := make([]models.MatchRecord, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		date, ok := ParseDate(h.cell(row, "date"))
		if !ok {
			continue
		}
		city := h.cell(row, "city")
		if city == "" {
			continue
		}

		runsCell := h.cell(row, "total_runs")
		runs, err := strconv.ParseFloat(runsCell, 64)
		if err != nil {
			return nil, badNumber(TableMatches, "total_runs", rowNum, runsCell)
		}

		records = append(records, models.MatchRecord{
			Date:      date,
			City:      city,
			Season:    h.cell(row, "season"),
			Team1:     h.cell(row, "team1"),
			Team2:     h.cell(row, "team2"),
			Venue:     h.cell(row, "venue"),
			TotalRuns: runs,
		})
	}
	return records, nil
}

// LoadWeather opens and parses the weather CSV at path.
func LoadWeather(path string) ([]models.WeatherRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather csv: %w", err)
	}
	defer f.Close()
	return ParseWeather(f)
}

// LoadMatches opens and parses the match results CSV at path.
func LoadMatches(path string) ([]models.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matches csv: %w", err)
	}
	defer f.Close()
	return ParseMatches(f)
}
