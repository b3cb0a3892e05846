package cbamatrix

import (
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/parser"
)

// Inspect reads and classifies a template without composing a workbook.
func Inspect(data []byte, sheetName string) (*models.Inspection, error) {
	table, err := readTable(data, sheetName)
	if err != nil {
		return nil, err
	}

	in := &models.Inspection{
		SheetName: table.SheetName,
		Options:   table.Options,
	}
	for _, r := range table.Rows {
		section := parser.Classify(r.Label)
		row := models.InspectedRow{
			Label:   r.Label,
			Section: section,
			Cells:   make([]models.CellContent, len(r.Cells)),
		}
		for j, raw := range r.Cells {
			row.Cells[j] = inspectCell(r.Label, section, raw)
		}
		in.Rows = append(in.Rows, row)
		if section != models.SectionDescription {
			in.Attributes = append(in.Attributes, r.Label)
		}
		if r.SourceRow == 0 {
			in.SyntheticIllustration = true
		}
	}
	return in, nil
}

// inspectCell shows a cell the way the Matrix sheet will render it. Unrecognized
// labels land in the Construction Considerations band.
func inspectCell(label string, section models.Section, raw string) models.CellContent {
	if section != models.SectionDescription {
		rating, notes := parser.ConsiderationCell(raw)
		return models.CellContent{Raw: raw, Rating: rating, Description: notes}
	}
	text, align := parser.NarrativeCell(label, raw)
	if align == parser.AlignCenter {
		return models.CellContent{Raw: raw, Rating: text}
	}
	return models.CellContent{Raw: raw, Description: text}
}
