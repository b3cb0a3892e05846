// Package parser reads CBA templates and normalizes their cell text.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
	"github.com/xuri/excelize/v2"
)

// IllustrationLabel is the row every generated matrix is guaranteed to carry.
const IllustrationLabel = "Illustration"

// ReadTemplate reads the template table from a sheet.
// An empty sheetName selects the first sheet. Column A holds the row labels and
// every other column up to the right-most non-blank cell is an option column;
// there may be none.
// The first non-blank row is the header row.
func ReadTemplate(f *excelize.File, sheetName string) (*models.TemplateTable, error) {
	sheet, err := resolveSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	bounds := findDataBounds(rows)
	if bounds.empty() {
		return nil, ErrNoColumns
	}
	// A label-only sheet is a table with zero options.
	width := bounds.maxCol + 1

	header := padRow(rows[bounds.minRow], width)
	table := &models.TemplateTable{
		SheetName:   sheet,
		LabelHeader: strings.TrimSpace(header[0]),
		Options:     make([]string, 0, width-1),
	}
	for _, h := range header[1:] {
		table.Options = append(table.Options, strings.TrimSpace(h))
	}

	for rowIdx := bounds.minRow + 1; rowIdx <= bounds.maxRow; rowIdx++ {
		row := padRow(rows[rowIdx], width)
		if isBlankRow(row) {
			continue
		}
		table.Rows = append(table.Rows, models.TemplateRow{
			Label:     strings.TrimSpace(row[0]),
			Cells:     row[1:],
			SourceRow: rowIdx + 1,
		})
	}

	ensureIllustration(table)
	return table, nil
}

// ensureIllustration prepends a blank Illustration row when the template has none.
func ensureIllustration(t *models.TemplateTable) {
	for _, r := range t.Rows {
		if NormalizeLabel(r.Label) == "illustration" {
			return
		}
	}
	synthetic := models.TemplateRow{
		Label: IllustrationLabel,
		Cells: make([]string, len(t.Options)),
	}
	t.Rows = append([]models.TemplateRow{synthetic}, t.Rows...)
}

func resolveSheet(f *excelize.File, sheetName string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoColumns
	}
	if sheetName == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheetName {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}
