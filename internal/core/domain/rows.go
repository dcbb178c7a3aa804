package domain

import "strings"

// FlattenRows returns every non-blank cell of rows, row by row, left to right.
// Spreadsheet column ranges (e.g. "A1:A") come back as one-cell rows.
func FlattenRows(rows [][]string) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			names = append(names, cell)
		}
	}
	return names
}

// PairsFromRows reads the first two cells of each row as a name and URL.
// Rows without a name are skipped; a row without a URL cell yields an
// empty URL. Cells past the second are ignored.
func PairsFromRows(rows [][]string) []PortalPair {
	pairs := make([]PortalPair, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		p := PortalPair{Name: row[0]}
		if len(row) > 1 {
			p.URL = row[1]
		}
		pairs = append(pairs, p)
	}
	return pairs
}
