package dataset

import "fmt"

const (
	TableWeather = "weather"
	TableMatches = "matches"
)

// SchemaError reports an input CSV the dashboard cannot use: a required
// column is missing from the header, or a numeric cell does not parse.
// It blocks loading; rows are never silently null-filled.
type SchemaError struct {
	Table  string // TableWeather or TableMatches
	Column string
	Row    int // 1-based data row for cell errors, zero for header errors
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: column %q, row %d: %s", e.Table, e.Column, e.Row, e.Reason)
	}
	return fmt.Sprintf("%s: column %q: %s", e.Table, e.Column, e.Reason)
}

func missingColumn(table, column string) *SchemaError {
	return &SchemaError{Table: table, Column: column, Reason: "required column missing"}
}

func badNumber(table, column string, row int, cell string) *SchemaError {
	return &SchemaError{
		Table:  table,
		Column: column,
		Row:    row,
		Reason: fmt.Sprintf("cannot parse %q as a number", cell),
	}
}
