package parser

import "strings"

// dataBounds is the 0-based bounding box of non-blank cells in a sheet.
type dataBounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

func (b dataBounds) empty() bool {
	return b.minRow < 0
}

// findDataBounds finds the bounding box of non-blank cells.
// Whitespace-only cells count as blank.
func findDataBounds(rows [][]string) dataBounds {
	b := dataBounds{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b
}

// padRow returns row extended or truncated to exactly width cells.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// isBlankRow reports whether every cell in row is blank.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
