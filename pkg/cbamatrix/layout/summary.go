package layout

import (
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/formula"
	"github.com/xuri/excelize/v2"
)

var summaryLabels = []struct {
	row   int
	label string
}{
	{summaryIllustrationRow, "Illustration"},
	{summaryOptionRow, "Option"},
	{summaryDescriptionRow, "Description"},
	{summaryScoreRow, "Score"},
	{summarySummaryRow, "Summary"},
}

var summaryRowHeights = map[int]float64{
	1:                      28,
	2:                      22,
	3:                      10,
	summaryIllustrationRow: 60,
	summaryOptionRow:       22,
	summaryDescriptionRow:  90,
	summaryScoreRow:        22,
	summarySummaryRow:      160,
}

const (
	summaryLabelWidth  = 18
	summaryOptionWidth = 35
)

func composeSummary(f *excelize.File, styles *styleBook, doc Document, m *MatrixLayout, wg WeightsGeometry) error {
	g := SummaryGeometry{Options: m.Geometry.Options}
	w := newSheetWriter(f, formula.SummarySheet, styles)

	writeHeading(w, g.LastCol(), doc)
	for _, l := range summaryLabels {
		w.value(summaryLabelCol, l.row, l.label, roleSummaryLabel)
	}

	matrixCell := func(j, row int) string {
		if row == 0 {
			return ""
		}
		return formula.SheetRef(formula.MatrixSheet, formula.Cell(m.Geometry.OptionCol(j), row))
	}

	illustration := m.Row("illustration")
	descRow := m.Row("scheme")
	if descRow == 0 {
		descRow = m.Row("description")
	}
	adv, dis := m.Row("advantages"), m.Row("disadvantages")

	for j := range g.Options {
		col := g.OptionCol(j)

		if ref := matrixCell(j, illustration); ref != "" {
			w.formula(col, summaryIllustrationRow, ref, roleCenter)
		} else {
			w.role(col, summaryIllustrationRow, roleCenter)
		}

		w.formula(col, summaryOptionRow, matrixCell(j, m.Geometry.HeaderRow()), roleCenterBold)
		w.conditional(formula.Cell(col, summaryOptionRow),
			bandRules(formula.ScoreBands, formula.ScaledSAW(wg.SAWRef(j))))

		if ref := matrixCell(j, descRow); ref != "" {
			w.formula(col, summaryDescriptionRow, ref, roleLeft)
		} else {
			w.role(col, summaryDescriptionRow, roleLeft)
		}

		scoreCell := formula.Cell(col, summaryScoreRow)
		w.formula(col, summaryScoreRow, formula.Ref(formula.WeightsSheet, formula.Cell(wg.ScoreCol(j), wg.SAWRow())), rolePercent)
		w.conditional(scoreCell, bandRules(formula.FractionBands, scoreCell))

		w.formula(col, summarySummaryRow, formula.ProsCons(matrixCell(j, adv), matrixCell(j, dis)), roleLeft)
	}

	w.frame(Rect{
		FirstRow: summaryIllustrationRow, LastRow: summarySummaryRow,
		FirstCol: summaryLabelCol, LastCol: g.LastCol(),
	}, summaryFirstOption)

	w.colWidth(summaryLabelCol, summaryLabelCol, summaryLabelWidth)
	w.colWidth(summaryFirstOption, g.LastCol(), summaryOptionWidth)
	for row := 1; row <= summarySummaryRow; row++ {
		w.rowHeight(row, summaryRowHeights[row])
	}
	w.freeze(summaryFirstOption, summaryIllustrationRow)

	return w.applyStyles()
}
