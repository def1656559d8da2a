package api

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sidvish/pitchweather/internal/analysis"
)

var validate = validator.New()

// filterQuery holds the raw dashboard query parameters before conversion
// into an analysis.Filter. season, city and team repeat; tmin and tmax
// are the optional bounds of an inclusive temperature range.
type filterQuery struct {
	Seasons []string `validate:"dive,max=64"`
	Cities  []string `validate:"dive,max=64"`
	Teams   []string `validate:"dive,max=64"`
	TempMin *float64 `validate:"omitempty,gte=-90,lte=65"`
	TempMax *float64 `validate:"omitempty,gte=-90,lte=65"`
}

func parseFilterQuery(q url.Values) (filterQuery, error) {
	fq := filterQuery{
		Seasons: cleanParams(q["season"]),
		Cities:  cleanParams(q["city"]),
		Teams:   cleanParams(q["team"]),
	}

	var err error
	if fq.TempMin, err = parseTempParam(q.Get("tmin"), "tmin"); err != nil {
		return fq, err
	}
	if fq.TempMax, err = parseTempParam(q.Get("tmax"), "tmax"); err != nil {
		return fq, err
	}

	if err := validate.Struct(fq); err != nil {
		return fq, err
	}
	// Cross-field check stays out of the struct tags: each bound is
	// optional, so the comparison only applies when both are present.
	if fq.TempMin != nil && fq.TempMax != nil && *fq.TempMax < *fq.TempMin {
		return fq, fmt.Errorf("tmax %g is below tmin %g", *fq.TempMax, *fq.TempMin)
	}
	return fq, nil
}

// cleanParams trims repeated query values and drops blanks so that
// "?season=" does not filter everything out.
func cleanParams(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseTempParam(raw, name string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", name, raw)
	}
	return &v, nil
}

// toFilter converts the bound query into an analysis filter. A single
// temperature bound leaves the other side open.
func (fq filterQuery) toFilter() analysis.Filter {
	f := analysis.Filter{
		Seasons: fq.Seasons,
		Cities:  fq.Cities,
		Teams:   fq.Teams,
	}
	if fq.TempMin != nil || fq.TempMax != nil {
		f.HasTempRange = true
		f.TempMin = -math.MaxFloat64
		f.TempMax = math.MaxFloat64
		if fq.TempMin != nil {
			f.TempMin = *fq.TempMin
		}
		if fq.TempMax != nil {
			f.TempMax = *fq.TempMax
		}
	}
	return f
}
