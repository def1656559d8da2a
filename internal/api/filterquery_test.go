package api

import (
	"math"
	"net/url"
	"strings"
	"testing"
)

func TestParseFilterQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		wantErr bool
		check   func(t *testing.T, fq filterQuery)
	}{
		{
			name:  "empty query",
			query: url.Values{},
			check: func(t *testing.T, fq filterQuery) {
				if !fq.toFilter().IsZero() {
					t.Errorf("toFilter() = %+v, want zero filter", fq.toFilter())
				}
			},
		},
		{
			name:  "repeated axis params",
			query: url.Values{"season": {"2022", "2023"}, "city": {"Mumbai"}},
			check: func(t *testing.T, fq filterQuery) {
				if len(fq.Seasons) != 2 || len(fq.Cities) != 1 {
					t.Errorf("bound %d seasons and %d cities, want 2 and 1", len(fq.Seasons), len(fq.Cities))
				}
			},
		},
		{
			name:  "blank values dropped",
			query: url.Values{"team": {"", "  ", "CSK"}},
			check: func(t *testing.T, fq filterQuery) {
				if len(fq.Teams) != 1 || fq.Teams[0] != "CSK" {
					t.Errorf("Teams = %v, want [CSK]", fq.Teams)
				}
			},
		},
		{
			name:  "tmin alone leaves the top open",
			query: url.Values{"tmin": {"30"}},
			check: func(t *testing.T, fq filterQuery) {
				f := fq.toFilter()
				if !f.HasTempRange || f.TempMin != 30 || f.TempMax != math.MaxFloat64 {
					t.Errorf("toFilter() = %+v, want [30, +inf]", f)
				}
			},
		},
		{
			name:  "tmax alone leaves the bottom open",
			query: url.Values{"tmax": {"25.5"}},
			check: func(t *testing.T, fq filterQuery) {
				f := fq.toFilter()
				if !f.HasTempRange || f.TempMax != 25.5 || f.TempMin != -math.MaxFloat64 {
					t.Errorf("toFilter() = %+v, want [-inf, 25.5]", f)
				}
			},
		},
		{
			name:  "both bounds",
			query: url.Values{"tmin": {"20"}, "tmax": {"35"}},
			check: func(t *testing.T, fq filterQuery) {
				f := fq.toFilter()
				if f.TempMin != 20 || f.TempMax != 35 {
					t.Errorf("toFilter() = %+v, want [20, 35]", f)
				}
			},
		},
		{
			name:    "non-numeric bound",
			query:   url.Values{"tmin": {"warm"}},
			wantErr: true,
		},
		{
			name:    "inverted range",
			query:   url.Values{"tmin": {"30"}, "tmax": {"20"}},
			wantErr: true,
		},
		{
			name:    "bound outside the physical range",
			query:   url.Values{"tmin": {"-120"}},
			wantErr: true,
		},
		{
			name:    "oversized axis value",
			query:   url.Values{"city": {strings.Repeat("x", 65)}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fq, err := parseFilterQuery(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFilterQuery() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, fq)
			}
		})
	}
}
