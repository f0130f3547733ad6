package table

import (
	"fmt"
	"strconv"
	"strings"
)

// fromRecords turns raw string rows into a table. The first non-blank row is
// the header; blank rows are skipped and short rows are padded, so a missing
// cell surfaces as a parse error naming its position. Non-blank cells past
// the header width are an error.
func fromRecords(records [][]string) (*Table, error) {
	var header []string
	var rows [][]string
	var lines []int

	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		if header == nil {
			header = rec
			continue
		}
		rows = append(rows, rec)
		lines = append(lines, i+1)
	}

	if header == nil {
		return &Table{}, nil
	}

	cols := make([]Column, len(header))
	for j, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", j+1)
		}
		cols[j] = Column{Name: name, Values: make([]float64, len(rows))}
	}

	for i, rec := range rows {
		if len(rec) > len(cols) && !isBlank(rec[len(cols):]) {
			return nil, fmt.Errorf("row %d: %d cells, header has %d", lines[i], len(rec), len(cols))
		}
		for j := range cols {
			cell := ""
			if j < len(rec) {
				cell = strings.TrimSpace(rec[j])
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: invalid number %q", lines[i], cols[j].Name, cell)
			}
			cols[j].Values[i] = v
		}
	}

	return New(cols...)
}

// toRecords renders t as a header row followed by data rows.
func toRecords(t *Table) [][]string {
	records := make([][]string, 0, t.Len()+1)
	records = append(records, t.Names())
	for i := 0; i < t.Len(); i++ {
		row := t.row(i)
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = FormatNumber(v)
		}
		records = append(records, rec)
	}
	return records
}

// FormatNumber renders v with the fewest digits that round-trip.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
