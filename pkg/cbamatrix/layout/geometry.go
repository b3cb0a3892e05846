// Package layout composes the Matrix, Weights & SAW and Summary CBA sheets.
//
// All row and column positions are derived from the option and attribute counts
// by the geometry types in this file; composers never hard-code offsets.
package layout

import "github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/formula"

// Span is an inclusive 1-based column or row interval. The zero Span is empty.
type Span struct {
	First, Last int
}

// Width returns the number of positions covered.
func (s Span) Width() int {
	if s.First < 1 || s.Last < s.First {
		return 0
	}
	return s.Last - s.First + 1
}

// InfoBands splits ncols columns into left, center and right bands of roughly
// 25/50/25 percent. Side bands get at least two columns when the width allows a
// non-empty center; narrower sheets shrink them, and below three columns the
// center band is empty.
func InfoBands(ncols int) (left, center, right Span) {
	switch {
	case ncols <= 1:
		return Span{1, 1}, Span{}, Span{}
	case ncols == 2:
		return Span{1, 1}, Span{}, Span{2, 2}
	}
	side := max(2, ncols/4)
	if 2*side+1 > ncols {
		side = (ncols - 1) / 2
	}
	return Span{1, side}, Span{side + 1, ncols - side}, Span{ncols - side + 1, ncols}
}

// Rect is an inclusive cell rectangle.
type Rect struct {
	FirstRow, LastRow int
	FirstCol, LastCol int
}

// Matrix sheet fixed positions.
const (
	matrixBandCol     = 1
	matrixLabelCol    = 2
	matrixFirstOption = 3
	matrixTitleRow    = 1
	matrixInfoRow     = 2
	matrixHeaderRow   = 4
	matrixFirstBody   = 5
)

// MatrixGeometry positions the Matrix sheet for a given option count.
type MatrixGeometry struct {
	Options int
}

// LastCol is the right-most table column.
func (g MatrixGeometry) LastCol() int {
	return matrixLabelCol + g.Options
}

// OptionCol is the column of option j (0-based).
func (g MatrixGeometry) OptionCol(j int) int {
	return matrixFirstOption + j
}

// HeaderRow is the option header row.
func (g MatrixGeometry) HeaderRow() int {
	return matrixHeaderRow
}

// FreezeCell is the top-left cell of the scrollable pane.
func (g MatrixGeometry) FreezeCell() string {
	return formula.Cell(matrixFirstOption, matrixFirstBody)
}

// Weights & SAW sheet positions.
const (
	weightsHeaderRow    = 1
	weightsFirstAttrRow = 2
	ratingMapMinCol     = 12
)

// WeightsGeometry positions the Weights & SAW sheet.
type WeightsGeometry struct {
	Options    int
	Attributes int
}

// FirstAttrRow is the first attribute row.
func (g WeightsGeometry) FirstAttrRow() int { return weightsFirstAttrRow }

// LastAttrRow is the last attribute row; it precedes FirstAttrRow when there are none.
func (g WeightsGeometry) LastAttrRow() int { return weightsFirstAttrRow + g.Attributes - 1 }

// SAWRow holds the SAW score per option.
func (g WeightsGeometry) SAWRow() int { return weightsFirstAttrRow + g.Attributes }

// RankRow holds the rank per option.
func (g WeightsGeometry) RankRow() int { return g.SAWRow() + 1 }

// Score10Row holds the 0-10 score per option.
func (g WeightsGeometry) Score10Row() int { return g.SAWRow() + 2 }

// SumRow holds the sum of normalized weights.
func (g WeightsGeometry) SumRow() int { return g.SAWRow() + 3 }

// ScoreCol is the normalized-rating column of option j (0-based).
func (g WeightsGeometry) ScoreCol(j int) int { return formula.FirstScoreCol + j }

// LastScoreCol is the last normalized-rating column.
func (g WeightsGeometry) LastScoreCol() int { return formula.FirstScoreCol + g.Options - 1 }

// RatingMap places the rating lookup table two columns right of the scores,
// never left of column L.
func (g WeightsGeometry) RatingMap() formula.RatingMap {
	col := max(ratingMapMinCol, g.LastScoreCol()+2)
	return formula.RatingMap{
		LabelCol: col,
		ValueCol: col + 1,
		FirstRow: weightsHeaderRow + 1,
		LastRow:  weightsHeaderRow + len(ratingScale),
	}
}

// SAWRef is the absolute-row reference to option j's SAW score on the weights sheet.
func (g WeightsGeometry) SAWRef(j int) string {
	return formula.SheetRef(formula.WeightsSheet, formula.AbsRowCell(g.ScoreCol(j), g.SAWRow()))
}

// Summary CBA sheet positions.
const (
	summaryLabelCol        = 1
	summaryFirstOption     = 2
	summaryIllustrationRow = 4
	summaryOptionRow       = 5
	summaryDescriptionRow  = 6
	summaryScoreRow        = 7
	summarySummaryRow      = 8
)

// SummaryGeometry positions the Summary CBA sheet.
type SummaryGeometry struct {
	Options int
}

// LastCol is the right-most column.
func (g SummaryGeometry) LastCol() int { return summaryLabelCol + g.Options }

// OptionCol is the column of option j (0-based).
func (g SummaryGeometry) OptionCol(j int) int { return summaryFirstOption + j }
