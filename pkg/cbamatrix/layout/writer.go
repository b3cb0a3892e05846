package layout

import (
	"fmt"
	"sort"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/formula"
	"github.com/xuri/excelize/v2"
)

type cellPos struct {
	row, col int
}

// sheetWriter records cell roles while writing and applies styles in one pass.
// The first error sticks; later calls become no-ops.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles *styleBook
	roles  map[cellPos]cellRole
	edges  map[cellPos]Edges
	err    error
}

func newSheetWriter(f *excelize.File, sheet string, styles *styleBook) *sheetWriter {
	return &sheetWriter{
		f:      f,
		sheet:  sheet,
		styles: styles,
		roles:  make(map[cellPos]cellRole),
		edges:  make(map[cellPos]Edges),
	}
}

func (w *sheetWriter) fail(op string, err error) {
	if err != nil && w.err == nil {
		w.err = fmt.Errorf("%s %s: %w", w.sheet, op, err)
	}
}

func (w *sheetWriter) value(col, row int, v any, role cellRole) {
	w.roles[cellPos{row, col}] = role
	if w.err != nil {
		return
	}
	if s, ok := v.(string); ok && s == "" {
		return
	}
	w.fail("set value", w.f.SetCellValue(w.sheet, formula.Cell(col, row), v))
}

func (w *sheetWriter) formula(col, row int, expr string, role cellRole) {
	w.roles[cellPos{row, col}] = role
	if w.err != nil {
		return
	}
	w.fail("set formula", w.f.SetCellFormula(w.sheet, formula.Cell(col, row), expr))
}

func (w *sheetWriter) role(col, row int, role cellRole) {
	w.roles[cellPos{row, col}] = role
}

func (w *sheetWriter) merge(firstCol, firstRow, lastCol, lastRow int) {
	if w.err != nil || (firstCol == lastCol && firstRow == lastRow) {
		return
	}
	w.fail("merge", w.f.MergeCell(w.sheet, formula.Cell(firstCol, firstRow), formula.Cell(lastCol, lastRow)))
}

// frame assigns grid borders to every cell of r.
func (w *sheetWriter) frame(r Rect, dividerFrom int) {
	for row := r.FirstRow; row <= r.LastRow; row++ {
		for col := r.FirstCol; col <= r.LastCol; col++ {
			w.edges[cellPos{row, col}] = gridEdges(row, col, r, dividerFrom)
		}
	}
}

// thickTop promotes the border between row-1 and row to thick across r's columns.
func (w *sheetWriter) thickTop(row int, r Rect) {
	if row <= r.FirstRow || row > r.LastRow {
		return
	}
	for col := r.FirstCol; col <= r.LastCol; col++ {
		below := w.edges[cellPos{row, col}]
		below.Top = borderThick
		w.edges[cellPos{row, col}] = below
		above := w.edges[cellPos{row - 1, col}]
		above.Bottom = borderThick
		w.edges[cellPos{row - 1, col}] = above
	}
}

// applyStyles writes the style of every cell that has a role or border,
// in row-major order so style ids are stable across runs.
func (w *sheetWriter) applyStyles() error {
	if w.err != nil {
		return w.err
	}
	positions := make([]cellPos, 0, len(w.roles)+len(w.edges))
	for p := range w.roles {
		positions = append(positions, p)
	}
	for p := range w.edges {
		if _, ok := w.roles[p]; !ok {
			positions = append(positions, p)
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].row != positions[j].row {
			return positions[i].row < positions[j].row
		}
		return positions[i].col < positions[j].col
	})

	for _, p := range positions {
		id, err := w.styles.id(w.roles[p], w.edges[p])
		if err != nil {
			return err
		}
		cell := formula.Cell(p.col, p.row)
		if err := w.f.SetCellStyle(w.sheet, cell, cell, id); err != nil {
			return fmt.Errorf("%s set style: %w", w.sheet, err)
		}
	}
	return nil
}

func (w *sheetWriter) colWidth(firstCol, lastCol int, width float64) {
	if w.err != nil || lastCol < firstCol {
		return
	}
	w.fail("col width", w.f.SetColWidth(w.sheet, formula.Col(firstCol), formula.Col(lastCol), width))
}

func (w *sheetWriter) rowHeight(row int, height float64) {
	if w.err != nil {
		return
	}
	w.fail("row height", w.f.SetRowHeight(w.sheet, row, height))
}

// freeze freezes rows above and columns left of the cell at (col, row).
func (w *sheetWriter) freeze(col, row int) {
	if w.err != nil {
		return
	}
	pane := "bottomRight"
	switch {
	case col == 1:
		pane = "bottomLeft"
	case row == 1:
		pane = "topRight"
	}
	w.fail("panes", w.f.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: formula.Cell(col, row),
		ActivePane:  pane,
	}))
}

// banner writes a merged, titled row across cols.
func (w *sheetWriter) banner(row int, cols Span, text string, role cellRole) {
	if cols.Width() == 0 {
		return
	}
	w.merge(cols.First, row, cols.Last, row)
	w.value(cols.First, row, text, role)
}

// conditional paints addr with the colour of the first matching rule.
func (w *sheetWriter) conditional(addr string, rules []conditionalRule) {
	if w.err != nil {
		return
	}
	opts := make([]excelize.ConditionalFormatOptions, 0, len(rules))
	for _, r := range rules {
		id, err := w.styles.fill(r.color)
		if err != nil {
			w.fail("conditional style", err)
			return
		}
		opts = append(opts, r.options(id))
	}
	w.fail("conditional format", w.f.SetConditionalFormat(w.sheet, addr, opts))
}

// conditionalRule is either a cell-equals rule (value set) or a formula rule.
type conditionalRule struct {
	value   string
	formula string
	color   string
}

func (r conditionalRule) options(styleID int) excelize.ConditionalFormatOptions {
	format := styleID
	if r.formula != "" {
		return excelize.ConditionalFormatOptions{Type: "formula", Criteria: r.formula, Format: &format}
	}
	return excelize.ConditionalFormatOptions{Type: "cell", Criteria: "==", Value: r.value, Format: &format}
}

// bandRules colours a score expression by band.
func bandRules(bands []formula.Band, expr string) []conditionalRule {
	rules := make([]conditionalRule, len(bands))
	for i, b := range bands {
		rules[i] = conditionalRule{formula: formula.InBand(expr, b), color: b.Color}
	}
	return rules
}
