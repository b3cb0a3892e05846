package layout

import (
	"fmt"
	"strings"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/formula"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/parser"
	"github.com/xuri/excelize/v2"
)

// Section band captions.
const (
	considerationBand   = "Construction Considerations"
	descriptionBandTail = " Description"
	defaultLabelHeader  = "Options"
)

const (
	bandColWidth    = 5
	optionColWidth  = 35
	ratingRowHeight = 15
)

// MatrixLayout records where the Matrix sheet placed things, for the sheets that
// reference it.
type MatrixLayout struct {
	Geometry MatrixGeometry
	// EndRow is the last table row.
	EndRow int
	// Attributes are the rows of the Construction Considerations band in order,
	// unrecognized labels included.
	Attributes []models.Attribute
	// labelRows maps a normalized label to its first Matrix row.
	labelRows map[string]int
}

// Row returns the first Matrix row carrying label, or 0 when absent.
func (m *MatrixLayout) Row(label string) int {
	return m.labelRows[parser.NormalizeLabel(label)]
}

// RatingCell returns the rating cell of attribute i for option j.
func (m *MatrixLayout) RatingCell(i, j int) string {
	return formula.Cell(m.Geometry.OptionCol(j), m.Attributes[i].MatrixRow)
}

// OptionHeader is the header caption of option j (0-based). A blank name gives
// just "Option N".
func OptionHeader(j int, name string) string {
	if name == "" {
		return fmt.Sprintf("Option %d", j+1)
	}
	return fmt.Sprintf("Option %d - %s", j+1, name)
}

type matrixSection struct {
	caption string
	rows    []int
	// rated rows take the two-row rating layout and become attributes.
	rated bool
}

func composeMatrix(f *excelize.File, styles *styleBook, doc Document) (*MatrixLayout, error) {
	t := doc.Table
	g := MatrixGeometry{Options: len(t.Options)}
	w := newSheetWriter(f, formula.MatrixSheet, styles)
	out := &MatrixLayout{Geometry: g, labelRows: make(map[string]int)}

	writeHeading(w, g.LastCol(), doc)

	hr := g.HeaderRow()
	w.role(matrixBandCol, hr, roleHeader)
	labelHeader := t.LabelHeader
	if labelHeader == "" || strings.Contains(strings.ToLower(labelHeader), "unnamed") {
		labelHeader = defaultLabelHeader
	}
	w.value(matrixLabelCol, hr, labelHeader, roleHeader)
	for j, name := range t.Options {
		w.value(g.OptionCol(j), hr, OptionHeader(j, name), roleHeader)
	}

	desc, consid, other := parser.Partition(t.Labels())
	sections := []matrixSection{
		{caption: doc.Purpose + descriptionBandTail, rows: desc},
		{caption: considerationBand, rows: append(consid, other...), rated: true},
	}

	row := matrixFirstBody
	for _, sec := range sections {
		if len(sec.rows) == 0 {
			continue
		}
		start := row
		for _, i := range sec.rows {
			tr := t.Rows[i]
			if _, ok := out.labelRows[parser.NormalizeLabel(tr.Label)]; !ok {
				out.labelRows[parser.NormalizeLabel(tr.Label)] = row
			}
			if sec.rated {
				writeConsideration(w, g, tr, row)
				out.Attributes = append(out.Attributes, models.Attribute{Name: tr.Label, MatrixRow: row})
				row += 2
				continue
			}
			writeNarrative(w, g, tr, row)
			row++
		}
		w.merge(matrixBandCol, start, matrixBandCol, row-1)
		w.value(matrixBandCol, start, sec.caption, roleSectionBand)
	}
	out.EndRow = row - 1

	table := Rect{FirstRow: hr, LastRow: out.EndRow, FirstCol: matrixBandCol, LastCol: g.LastCol()}
	w.frame(table, matrixFirstOption)
	if d := out.Row("disadvantages"); d > 0 {
		w.thickTop(d+1, table)
	}

	w.colWidth(matrixBandCol, matrixBandCol, bandColWidth)
	w.colWidth(matrixLabelCol, g.LastCol(), optionColWidth)
	for _, a := range out.Attributes {
		w.rowHeight(a.MatrixRow, ratingRowHeight)
	}

	addRatingRules(w, out)
	w.freeze(matrixFirstOption, matrixFirstBody)
	if err := w.applyStyles(); err != nil {
		return nil, err
	}
	if err := setPrintLayout(f, formula.MatrixSheet, hr); err != nil {
		return nil, err
	}
	return out, nil
}

// writeHeading writes the title banner and the project info band.
func writeHeading(w *sheetWriter, ncols int, doc Document) {
	w.banner(1, Span{1, ncols}, doc.Title(), roleTitle)

	left, center, right := InfoBands(ncols)
	name := "Project Name: " + doc.ProjectName
	location := "Project Location: " + doc.ProjectLocation
	if center.Width() == 0 {
		name += "\n" + location
	}
	w.banner(matrixInfoRow, left, name, roleInfoLeft)
	w.banner(matrixInfoRow, center, location, roleInfoCenter)
	w.banner(matrixInfoRow, right, "Date: "+doc.Date.Format(bannerDateLayout), roleInfoRight)
}

// writeConsideration fills the two rows of a rated row: ratings above, notes below.
func writeConsideration(w *sheetWriter, g MatrixGeometry, tr models.TemplateRow, row int) {
	w.merge(matrixLabelCol, row, matrixLabelCol, row+1)
	w.value(matrixLabelCol, row, tr.Label, roleConsiderationLabel)
	for j := range g.Options {
		rating, notes := parser.ConsiderationCell(cellAt(tr, j))
		w.value(g.OptionCol(j), row, rating, roleCenter)
		w.value(g.OptionCol(j), row+1, notes, roleLeft)
	}
}

// writeNarrative fills a single-row description row.
func writeNarrative(w *sheetWriter, g MatrixGeometry, tr models.TemplateRow, row int) {
	w.value(matrixLabelCol, row, tr.Label, roleRowLabel)
	for j := range g.Options {
		text, align := parser.NarrativeCell(tr.Label, cellAt(tr, j))
		role := roleLeft
		if align == parser.AlignCenter {
			role = roleCenter
		}
		w.value(g.OptionCol(j), row, text, role)
	}
}

// addRatingRules restricts rating cells to the rating words and colours them by value.
func addRatingRules(w *sheetWriter, m *MatrixLayout) {
	if len(m.Attributes) == 0 || m.Geometry.Options == 0 || w.err != nil {
		return
	}

	var cells []string
	for i := range m.Attributes {
		for j := range m.Geometry.Options {
			cells = append(cells, m.RatingCell(i, j))
		}
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = strings.Join(cells, " ")
	if err := dv.SetDropList(parser.RatingWords); err != nil {
		w.fail("rating list", err)
		return
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid rating", "Choose a rating from the list.")
	dv.SetInput("Select rating", "Pick a rating.")
	w.fail("rating validation", w.f.AddDataValidation(w.sheet, dv))

	rules := make([]conditionalRule, len(parser.RatingWords))
	for i, word := range parser.RatingWords {
		rules[i] = conditionalRule{value: formula.Quote(word), color: RatingColors[word]}
	}
	for _, cell := range cells {
		w.conditional(cell, rules)
	}
}

// setPrintLayout prints landscape, one page wide, repeating the header row.
func setPrintLayout(f *excelize.File, sheet string, headerRow int) error {
	orientation := "landscape"
	fitWidth, fitHeight := 1, 0
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		FitToWidth:  &fitWidth,
		FitToHeight: &fitHeight,
	}); err != nil {
		return fmt.Errorf("%s page layout: %w", sheet, err)
	}
	fitToPage := true
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return fmt.Errorf("%s sheet props: %w", sheet, err)
	}
	rows := fmt.Sprintf("$%d:$%d", headerRow, headerRow)
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: formula.SheetRef(sheet, rows),
		Scope:    sheet,
	}); err != nil {
		return fmt.Errorf("%s print titles: %w", sheet, err)
	}
	return nil
}

func cellAt(tr models.TemplateRow, j int) string {
	if j < len(tr.Cells) {
		return tr.Cells[j]
	}
	return ""
}
