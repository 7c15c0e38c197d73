package utils

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// ParseCSV converts raw delimited text into one map per data row, keyed by
// trimmed header name. The first non-empty line is the header row. Lines
// whose cells are all blank are skipped and every cell value is trimmed.
// An inconsistent column count fails the whole parse - no partial rows are
// ever returned, so a malformed file can be rejected before any row-level
// work starts.
func ParseCSV(raw string) ([]map[string]string, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("malformed CSV: missing header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, cell := range rec {
			value := strings.TrimSpace(cell)
			if value != "" {
				empty = false
			}
			row[headers[i]] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
