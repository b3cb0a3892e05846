package layout

import (
	"fmt"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/formula"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/parser"
	"github.com/xuri/excelize/v2"
)

// Defaults of a fresh attribute row.
const (
	DefaultActive     = "Yes"
	DefaultImportance = 3
)

var ratingScale = parser.RatingWords

var weightsColWidths = []float64{34, 10, 18, 18}

const (
	scoreColWidth    = 18
	mapLabelColWidth = 12
	mapValueColWidth = 9
)

func composeWeights(f *excelize.File, styles *styleBook, m *MatrixLayout, options []string) (WeightsGeometry, error) {
	g := WeightsGeometry{Options: len(options), Attributes: len(m.Attributes)}
	w := newSheetWriter(f, formula.WeightsSheet, styles)

	headers := []string{"Attribute", "Active?", "Importance (1–5)", "Weight (normalized)"}
	for _, opt := range options {
		headers = append(headers, "NormScore - "+opt)
	}
	for i, h := range headers {
		w.value(i+1, weightsHeaderRow, h, roleCenterBold)
	}

	rm := g.RatingMap()
	w.value(rm.LabelCol, weightsHeaderRow, "Rating", roleCenterBold)
	w.value(rm.ValueCol, weightsHeaderRow, "Raw", roleCenterBold)
	for i, word := range ratingScale {
		w.value(rm.LabelCol, rm.FirstRow+i, word, roleBlank)
		w.value(rm.ValueCol, rm.FirstRow+i, i+1, roleBlank)
	}

	first, last := g.FirstAttrRow(), g.LastAttrRow()
	for i, attr := range m.Attributes {
		row := first + i
		w.value(formula.AttributeCol, row, attr.Name, roleCenter)
		w.value(formula.ActiveCol, row, DefaultActive, roleCenter)
		w.value(formula.ImportanceCol, row, DefaultImportance, roleCenter)
		w.formula(formula.WeightCol, row, formula.Weight(row, first, last), roleDecimal)
		for j := range options {
			w.formula(g.ScoreCol(j), row, formula.NormRating(m.RatingCell(i, j), rm), roleCenter)
		}
	}
	addWeightValidation(w, g)

	saw, rank, score, sum := g.SAWRow(), g.RankRow(), g.Score10Row(), g.SumRow()
	w.value(formula.AttributeCol, saw, "SAW Score", roleCenter)
	w.value(formula.AttributeCol, rank, "Rank", roleCenter)
	w.value(formula.AttributeCol, score, "Score (0–10)", roleCenter)
	w.value(formula.AttributeCol, sum, "Sum of normalized weights", roleCenter)
	for j := range options {
		col := g.ScoreCol(j)
		w.formula(col, saw, formula.SAW(col, first, last), roleDecimal)
		w.formula(col, rank, formula.Rank(col, saw, formula.FirstScoreCol, g.LastScoreCol()), roleCenter)
		w.formula(col, score, formula.Score10(col, saw), roleCenter)
	}
	w.formula(formula.ActiveCol, sum, formula.SumWeights(first, last), roleCenter)

	for row := weightsHeaderRow; row <= sum; row++ {
		for col := 1; col <= g.LastScoreCol(); col++ {
			if _, ok := w.roles[cellPos{row, col}]; !ok {
				w.role(col, row, roleCenter)
			}
		}
	}

	for i, width := range weightsColWidths {
		w.colWidth(i+1, i+1, width)
	}
	w.colWidth(formula.FirstScoreCol, g.LastScoreCol(), scoreColWidth)
	w.colWidth(rm.LabelCol, rm.LabelCol, mapLabelColWidth)
	w.colWidth(rm.ValueCol, rm.ValueCol, mapValueColWidth)
	w.freeze(1, weightsHeaderRow+1)

	if err := w.applyStyles(); err != nil {
		return g, err
	}
	return g, nil
}

// addWeightValidation adds the Yes/No and 1-5 dropdowns to the attribute rows.
func addWeightValidation(w *sheetWriter, g WeightsGeometry) {
	if g.Attributes == 0 || w.err != nil {
		return
	}
	lists := []struct {
		col    int
		values []string
	}{
		{formula.ActiveCol, []string{"Yes", "No"}},
		{formula.ImportanceCol, []string{"1", "2", "3", "4", "5"}},
	}
	for _, l := range lists {
		dv := excelize.NewDataValidation(false)
		dv.Sqref = formula.ColRange(l.col, g.FirstAttrRow(), g.LastAttrRow())
		if err := dv.SetDropList(l.values); err != nil {
			w.fail("weight list", err)
			return
		}
		w.fail("weight validation", w.f.AddDataValidation(w.sheet, dv))
	}
}

// colorOptionHeaders bands the Matrix option headers by live SAW score.
func colorOptionHeaders(f *excelize.File, styles *styleBook, m *MatrixLayout, g WeightsGeometry) error {
	w := newSheetWriter(f, formula.MatrixSheet, styles)
	for j := range m.Geometry.Options {
		cell := formula.Cell(m.Geometry.OptionCol(j), m.Geometry.HeaderRow())
		w.conditional(cell, bandRules(formula.ScoreBands, formula.ScaledSAW(g.SAWRef(j))))
	}
	if w.err != nil {
		return fmt.Errorf("option header bands: %w", w.err)
	}
	return nil
}
