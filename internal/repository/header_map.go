package repository

import (
	"fmt"
	"strings"
)

// headerMap maps required column names to their indices in a CSV header
type headerMap map[string]int

// createHeaderMap locates every expected column in header, ignoring case
func createHeaderMap(header []string, expectedHeader []string) (headerMap, error) {
	columnMap := make(headerMap, len(expectedHeader))

	for _, column := range expectedHeader {
		idx := -1
		for i, field := range header {
			if strings.EqualFold(column, strings.TrimSpace(field)) {
				idx = i
				break
			}
		}

		if idx < 0 {
			return nil, fmt.Errorf("required field '%s' not found in CSV header", column)
		}
		columnMap[column] = idx
	}

	return columnMap, nil
}

// fits reports whether row has every mapped column
func (m headerMap) fits(row []string) bool {
	for _, idx := range m {
		if idx >= len(row) {
			return false
		}
	}
	return true
}

func (m headerMap) value(row []string, column string) string {
	return strings.TrimSpace(row[m[column]])
}
