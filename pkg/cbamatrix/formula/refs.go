// Package formula builds the spreadsheet formula text used by the generated workbook.
//
// Builders return formulas without the leading "=" sign; excelize stores them as is.
package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names. Formulas reference sheets by these exact names.
const (
	MatrixSheet  = "Matrix"
	WeightsSheet = "Weights & SAW"
	SummarySheet = "Summary CBA"
)

// Col converts a 1-based column number to its letter name.
func Col(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return ""
	}
	return name
}

// Cell returns a relative A1 reference such as "C5".
func Cell(col, row int) string {
	return Col(col) + strconv.Itoa(row)
}

// AbsCell returns an absolute reference such as "$C$5".
func AbsCell(col, row int) string {
	return "$" + Col(col) + "$" + strconv.Itoa(row)
}

// AbsRowCell returns a reference with only the row anchored, such as "C$5".
func AbsRowCell(col, row int) string {
	return Col(col) + "$" + strconv.Itoa(row)
}

// AbsColRange returns an absolute single-column range such as "$B$2:$B$7".
func AbsColRange(col, firstRow, lastRow int) string {
	return AbsCell(col, firstRow) + ":" + AbsCell(col, lastRow)
}

// ColRange returns a relative single-column range such as "E2:E7".
func ColRange(col, firstRow, lastRow int) string {
	return Cell(col, firstRow) + ":" + Cell(col, lastRow)
}

// AbsRowRange returns an absolute single-row range such as "$E$9:$G$9".
func AbsRowRange(row, firstCol, lastCol int) string {
	return AbsCell(firstCol, row) + ":" + AbsCell(lastCol, row)
}

// SheetRef qualifies a reference with a quoted sheet name.
func SheetRef(sheet, ref string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + ref
}

// Quote renders s as a string literal.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
