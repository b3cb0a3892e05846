package layout

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// excelize border style codes.
const (
	borderNone   = 0
	borderThin   = 1
	borderMedium = 2
	borderThick  = 5
)

const (
	borderColor      = "000000"
	sectionBandFill  = "F5F5F5"
	rowLabelFill     = "F0F0F0"
	titleFontSize    = 18
	infoFontSize     = 14
	headerFontSize   = 12
	sectionTextAngle = 90
)

// RatingColors fill rating cells by value.
var RatingColors = map[string]string{
	"Poor":      "FFC000",
	"Fair":      "FFFF66",
	"Good":      "CCFF66",
	"Very Good": "78FE66",
	"Excellent": "19CB01",
}

// Edges holds the border style code of each side of a cell.
type Edges struct {
	Left, Right, Top, Bottom int
}

func (e Edges) borders() []excelize.Border {
	var out []excelize.Border
	for _, side := range []struct {
		name  string
		style int
	}{{"left", e.Left}, {"right", e.Right}, {"top", e.Top}, {"bottom", e.Bottom}} {
		if side.style == borderNone {
			continue
		}
		out = append(out, excelize.Border{Type: side.name, Color: borderColor, Style: side.style})
	}
	return out
}

// gridEdges frames r with thick borders and thin inner lines. Columns from
// dividerFrom on are separated by medium vertical dividers.
func gridEdges(row, col int, r Rect, dividerFrom int) Edges {
	e := Edges{Left: borderThin, Right: borderThin, Top: borderThin, Bottom: borderThin}
	if col >= dividerFrom && col > r.FirstCol {
		e.Left = borderMedium
	}
	if col+1 >= dividerFrom && col < r.LastCol {
		e.Right = borderMedium
	}
	if col == r.FirstCol {
		e.Left = borderThick
	}
	if col == r.LastCol {
		e.Right = borderThick
	}
	if row == r.FirstRow {
		e.Top = borderThick
	}
	if row == r.LastRow {
		e.Bottom = borderThick
	}
	return e
}

// cellRole names the font, fill, alignment and number format of a cell.
type cellRole int

const (
	roleBlank cellRole = iota
	roleTitle
	roleInfoLeft
	roleInfoCenter
	roleInfoRight
	roleHeader
	roleSectionBand
	roleRowLabel
	roleConsiderationLabel
	roleSummaryLabel
	roleCenter
	roleLeft
	roleCenterBold
	roleDecimal
	rolePercent
)

var (
	alignCenter = &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	alignLeft   = &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true}
)

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func roleStyle(role cellRole) excelize.Style {
	switch role {
	case roleTitle:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: titleFontSize},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case roleInfoLeft:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: infoFontSize},
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		}
	case roleInfoCenter:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: infoFontSize},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case roleInfoRight:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: infoFontSize},
			Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		}
	case roleHeader:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: headerFontSize},
			Alignment: alignCenter,
		}
	case roleSectionBand:
		return excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: solidFill(sectionBandFill),
			Alignment: &excelize.Alignment{
				Horizontal: "center", Vertical: "center",
				TextRotation: sectionTextAngle, WrapText: true,
			},
		}
	case roleRowLabel:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      solidFill(rowLabelFill),
			Alignment: alignLeft,
		}
	case roleConsiderationLabel, roleSummaryLabel:
		return excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      solidFill(rowLabelFill),
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		}
	case roleCenter:
		return excelize.Style{Alignment: alignCenter}
	case roleLeft:
		return excelize.Style{Alignment: alignLeft}
	case roleCenterBold:
		return excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: alignCenter}
	case roleDecimal:
		return excelize.Style{Alignment: alignCenter, NumFmt: 2}
	case rolePercent:
		return excelize.Style{Alignment: alignCenter, NumFmt: 9}
	default:
		return excelize.Style{}
	}
}

type styleKey struct {
	role  cellRole
	edges Edges
}

// styleBook creates each role/border combination once per workbook.
type styleBook struct {
	f     *excelize.File
	ids   map[styleKey]int
	conds map[string]int
}

func newStyleBook(f *excelize.File) *styleBook {
	return &styleBook{
		f:     f,
		ids:   make(map[styleKey]int),
		conds: make(map[string]int),
	}
}

func (b *styleBook) id(role cellRole, edges Edges) (int, error) {
	key := styleKey{role: role, edges: edges}
	if id, ok := b.ids[key]; ok {
		return id, nil
	}
	style := roleStyle(role)
	style.Border = edges.borders()
	id, err := b.f.NewStyle(&style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	b.ids[key] = id
	return id, nil
}

// fill returns a conditional-format style that paints a solid background.
func (b *styleBook) fill(color string) (int, error) {
	if id, ok := b.conds[color]; ok {
		return id, nil
	}
	id, err := b.f.NewConditionalStyle(&excelize.Style{Fill: solidFill(color)})
	if err != nil {
		return 0, fmt.Errorf("create conditional style: %w", err)
	}
	b.conds[color] = id
	return id, nil
}
