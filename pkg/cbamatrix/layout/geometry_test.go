package layout

import "testing"

func TestInfoBands(t *testing.T) {
	tests := []struct {
		ncols               int
		left, center, right Span
	}{
		{1, Span{1, 1}, Span{}, Span{}},
		{2, Span{1, 1}, Span{}, Span{2, 2}},
		{3, Span{1, 1}, Span{2, 2}, Span{3, 3}},
		{4, Span{1, 1}, Span{2, 3}, Span{4, 4}},
		{5, Span{1, 2}, Span{3, 3}, Span{4, 5}},
		{12, Span{1, 3}, Span{4, 9}, Span{10, 12}},
	}
	for _, tt := range tests {
		left, center, right := InfoBands(tt.ncols)
		if left != tt.left || center != tt.center || right != tt.right {
			t.Errorf("InfoBands(%d) = %v %v %v, want %v %v %v",
				tt.ncols, left, center, right, tt.left, tt.center, tt.right)
		}
		if total := left.Width() + center.Width() + right.Width(); total != tt.ncols {
			t.Errorf("InfoBands(%d) covers %d columns", tt.ncols, total)
		}
	}
}

func TestSpanWidth(t *testing.T) {
	if (Span{}).Width() != 0 {
		t.Error("zero span should be empty")
	}
	if (Span{3, 2}).Width() != 0 {
		t.Error("inverted span should be empty")
	}
	if (Span{2, 4}).Width() != 3 {
		t.Error("span 2..4 should cover 3")
	}
}

func TestMatrixGeometry(t *testing.T) {
	g := MatrixGeometry{Options: 3}
	if g.LastCol() != 5 {
		t.Errorf("LastCol = %d", g.LastCol())
	}
	if g.OptionCol(0) != 3 || g.OptionCol(2) != 5 {
		t.Errorf("OptionCol = %d, %d", g.OptionCol(0), g.OptionCol(2))
	}
	if g.FreezeCell() != "C5" {
		t.Errorf("FreezeCell = %q", g.FreezeCell())
	}
}

func TestWeightsGeometry(t *testing.T) {
	g := WeightsGeometry{Options: 2, Attributes: 3}
	if g.FirstAttrRow() != 2 || g.LastAttrRow() != 4 {
		t.Errorf("attribute rows = %d..%d", g.FirstAttrRow(), g.LastAttrRow())
	}
	if g.SAWRow() != 5 || g.RankRow() != 6 || g.Score10Row() != 7 || g.SumRow() != 8 {
		t.Errorf("score rows = %d %d %d %d", g.SAWRow(), g.RankRow(), g.Score10Row(), g.SumRow())
	}
	if g.LastScoreCol() != 6 {
		t.Errorf("LastScoreCol = %d", g.LastScoreCol())
	}
	rm := g.RatingMap()
	if rm.LabelCol != 12 || rm.ValueCol != 13 || rm.FirstRow != 2 || rm.LastRow != 6 {
		t.Errorf("RatingMap = %+v", rm)
	}
	if got := g.SAWRef(1); got != "'Weights & SAW'!F$5" {
		t.Errorf("SAWRef = %q", got)
	}

	wide := WeightsGeometry{Options: 9}
	if rm := wide.RatingMap(); rm.LabelCol != 15 {
		t.Errorf("wide RatingMap.LabelCol = %d, want 15", rm.LabelCol)
	}

	none := WeightsGeometry{Options: 2}
	if none.LastAttrRow() >= none.FirstAttrRow() {
		t.Error("no attributes should give an empty attribute range")
	}
	if none.SAWRow() != 2 {
		t.Errorf("SAWRow without attributes = %d", none.SAWRow())
	}
}

func TestGridEdges(t *testing.T) {
	r := Rect{FirstRow: 4, LastRow: 6, FirstCol: 1, LastCol: 4}
	tests := []struct {
		row, col int
		want     Edges
	}{
		{4, 1, Edges{Left: borderThick, Right: borderThin, Top: borderThick, Bottom: borderThin}},
		{5, 2, Edges{Left: borderThin, Right: borderMedium, Top: borderThin, Bottom: borderThin}},
		{5, 3, Edges{Left: borderMedium, Right: borderMedium, Top: borderThin, Bottom: borderThin}},
		{6, 4, Edges{Left: borderMedium, Right: borderThick, Top: borderThin, Bottom: borderThick}},
	}
	for _, tt := range tests {
		if got := gridEdges(tt.row, tt.col, r, 3); got != tt.want {
			t.Errorf("gridEdges(%d, %d) = %+v, want %+v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestOptionHeader(t *testing.T) {
	if got := OptionHeader(0, "Drilled Shafts"); got != "Option 1 - Drilled Shafts" {
		t.Errorf("OptionHeader = %q", got)
	}
	if got := OptionHeader(2, ""); got != "Option 3" {
		t.Errorf("OptionHeader = %q", got)
	}
}
