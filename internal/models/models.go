package models

import (
	"time"
)

type WeatherRecord struct {
	Date        time.Time
	City        string
	TempC       float64
	Humidity    *float64 // optional column, nil when absent or blank
	WeatherType string   // raw CSV value, "Unknown" when absent
}

type MatchRecord struct {
	Date      time.Time
	City      string
	Season    string
	Team1     string
	Team2     string
	Venue     string
	TotalRuns float64
}

type MergedRow struct {
	Date         time.Time
	City         string
	Season       string
	Team1        string
	Team2        string
	Venue        string
	TotalRuns    float64
	TempC        float64
	Humidity     *float64
	WeatherType  string
	TempBucket   string // see merge.BucketTemp
	WeatherGroup string // see merge.GroupWeatherType
}
