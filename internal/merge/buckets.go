package merge

import "strings"

// TempBucket is the categorical label derived from match-day temperature.
type TempBucket string

const (
	BucketCool    TempBucket = "Cool (<=25)"
	BucketWarm    TempBucket = "Warm (26-30)"
	BucketHot     TempBucket = "Hot (31-35)"
	BucketVeryHot TempBucket = "Very Hot (>35)"
)

// BucketOrder lists the buckets coolest to hottest, the order charts use.
var BucketOrder = []TempBucket{BucketCool, BucketWarm, BucketHot, BucketVeryHot}

// BucketTemp assigns exactly one bucket to any temperature. Both ends are
// unbounded so nothing falls between labels.
func BucketTemp(tempC float64) TempBucket {
	switch {
	case tempC <= 25:
		return BucketCool
	case tempC <= 30:
		return BucketWarm
	case tempC <= 35:
		return BucketHot
	default:
		return BucketVeryHot
	}
}

// WeatherGroup is the canonical category for a raw weather_type string.
type WeatherGroup string

const (
	GroupRain   WeatherGroup = "Rain"
	GroupHumid  WeatherGroup = "Humid"
	GroupMist   WeatherGroup = "Mist"
	GroupCloudy WeatherGroup = "Cloudy"
	GroupClear  WeatherGroup = "Clear"
	GroupOther  WeatherGroup = "Other"
)

// GroupWeatherType maps a raw weather_type value to its group. Matching is
// case-insensitive substring, first hit wins; anything unmatched,
// including "Unknown" and the empty string, lands in Other.
func GroupWeatherType(raw string) WeatherGroup {
	lower := strings.ToLower(raw)

	// Rain outranks everything: "thundery showers" is Rain, not Cloudy
	if strings.Contains(lower, "storm") || strings.Contains(lower, "thunder") ||
		strings.Contains(lower, "rain") || strings.Contains(lower, "drizzle") ||
		strings.Contains(lower, "shower") || strings.Contains(lower, "wet") {
		return GroupRain
	}

	if strings.Contains(lower, "humid") || strings.Contains(lower, "muggy") ||
		strings.Contains(lower, "sultry") || strings.Contains(lower, "sticky") {
		return GroupHumid
	}

	if strings.Contains(lower, "fog") || strings.Contains(lower, "mist") ||
		strings.Contains(lower, "haze") || strings.Contains(lower, "smog") {
		return GroupMist
	}

	if strings.Contains(lower, "cloud") || strings.Contains(lower, "overcast") {
		return GroupCloudy
	}

	if strings.Contains(lower, "sun") || strings.Contains(lower, "clear") ||
		strings.Contains(lower, "fine") || strings.Contains(lower, "bright") {
		return GroupClear
	}

	return GroupOther
}
