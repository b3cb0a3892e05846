package formula

// Fixed columns of the Weights & SAW sheet.
const (
	AttributeCol  = 1
	ActiveCol     = 2
	ImportanceCol = 3
	WeightCol     = 4
	FirstScoreCol = 5
)

// RatingMap locates the Rating/Raw lookup table on the Weights & SAW sheet.
type RatingMap struct {
	LabelCol int
	ValueCol int
	FirstRow int
	LastRow  int
}

func (m RatingMap) labels() string {
	return AbsColRange(m.LabelCol, m.FirstRow, m.LastRow)
}

func (m RatingMap) values() string {
	return AbsColRange(m.ValueCol, m.FirstRow, m.LastRow)
}

// activeImportance is the sum of importances of active attribute rows.
func activeImportance(firstRow, lastRow int) string {
	return sprintf(`SUMPRODUCT((%s="Yes")*(%s))`,
		AbsColRange(ActiveCol, firstRow, lastRow),
		AbsColRange(ImportanceCol, firstRow, lastRow))
}

// Weight normalizes the importance on row against all active importances.
// It yields 0 for inactive rows and when no active row has importance.
func Weight(row, firstRow, lastRow int) string {
	total := activeImportance(firstRow, lastRow)
	return sprintf(`IF(%s=0,0,IF(%s="Yes",%s,0)/%s)`,
		total, Cell(ActiveCol, row), Cell(ImportanceCol, row), total)
}

// NormRating maps a Matrix rating cell to (rank-1)/4, clamped at 0 and
// defaulting to 0 when the cell holds no rating word.
func NormRating(matrixCell string, m RatingMap) string {
	return sprintf(`MAX(0,(IFERROR(INDEX(%s,MATCH(%s,%s,0)),0)-1)/4)`,
		m.values(), SheetRef(MatrixSheet, matrixCell), m.labels())
}

// SAW is the weighted sum of the normalized ratings in col.
// With no attribute rows the score is the constant 0.
func SAW(col, firstRow, lastRow int) string {
	if lastRow < firstRow {
		return "0"
	}
	return sprintf("SUMPRODUCT(%s,%s)",
		AbsColRange(WeightCol, firstRow, lastRow), ColRange(col, firstRow, lastRow))
}

// Rank is the descending competition rank of the SAW score in col.
func Rank(col, sawRow, firstCol, lastCol int) string {
	return sprintf("RANK(%s,%s,0)", Cell(col, sawRow), AbsRowRange(sawRow, firstCol, lastCol))
}

// Score10 rounds the SAW score in col to a 0-10 integer.
func Score10(col, sawRow int) string {
	return sprintf("ROUND(10*%s,0)", Cell(col, sawRow))
}

// SumWeights totals the normalized weights.
func SumWeights(firstRow, lastRow int) string {
	if lastRow < firstRow {
		return "0"
	}
	return sprintf("SUM(%s)", AbsColRange(WeightCol, firstRow, lastRow))
}
