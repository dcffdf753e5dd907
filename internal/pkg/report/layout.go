package report

import (
	"fmt"
	"time"
)

// Placeholder is rendered in place of any absent optional text field.
// Documents never leave a value blank.
const Placeholder = "N/A"

// Document is a declarative description of a fixed-layout report. It is
// assembled by the reporting service and consumed in a single rendering pass,
// keeping content generation separate from the drawing primitive.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
	// Footer holds the fixed boilerplate instruction lines printed last
	Footer []string
}

// Section is a vertical block: an optional heading, labeled key/value rows
// and an optional grid table, stacked top to bottom.
type Section struct {
	Heading string
	Rows    []Row
	Table   *Table
}

// Row is one labeled key/value line
type Row struct {
	Label string
	Value string
}

// Table is a simple grid with a header row
type Table struct {
	Headers []string
	Rows    [][]string
}

// OrNA returns the value or the placeholder when empty
func OrNA(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// DateOrNA formats a date or returns the placeholder when absent
func DateOrNA(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format("02 Jan 2006")
}

// Amount formats a monetary value. Absent numeric amounts render as 0.
func Amount(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
