// Package models defines data structures for CBA template parsing and inspection.
package models

// TemplateRow is one labeled row of an uploaded template.
type TemplateRow struct {
	// Label is the row label from column A, as written in the template.
	Label string `json:"label" yaml:"label"`
	// Cells holds the raw text per option, aligned with TemplateTable.Options.
	Cells []string `json:"cells" yaml:"cells"`
	// SourceRow is the 1-based row in the source sheet (0 when synthesized).
	SourceRow int `json:"source_row" yaml:"source_row"`
}

// TemplateTable is the row-labeled, column-per-option view of a template sheet.
type TemplateTable struct {
	// SheetName is the sheet the table was read from.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	// LabelHeader is the trimmed header of the label column (may be empty).
	LabelHeader string `json:"label_header" yaml:"label_header"`
	// Options are the trimmed option headers in left-to-right order.
	Options []string `json:"options" yaml:"options"`
	// Rows are the labeled rows in source order.
	Rows []TemplateRow `json:"rows" yaml:"rows"`
}

// Labels returns the row labels in order.
func (t *TemplateTable) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Label
	}
	return labels
}

// Cell returns the raw text at row i, option j, or "" when out of range.
func (t *TemplateTable) Cell(i, j int) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[i].Cells
	if j < 0 || j >= len(cells) {
		return ""
	}
	return cells[j]
}
