package parser

// Alignment hint for a rendered cell.
type Alignment int

const (
	// AlignLeft is top-left wrapped text.
	AlignLeft Alignment = iota
	// AlignCenter is centered wrapped text.
	AlignCenter
)

// ConsiderationCell renders a rated row cell into its rating word (upper row)
// and bulletized description (lower row).
func ConsiderationCell(raw string) (rating, description string) {
	c := SplitRating(raw)
	return c.Rating, Bulletize(c.Description)
}

// NarrativeCell renders a single-row cell of a description or unrecognized row.
// Plain-text rows keep the raw text. A lone rating is shown centered; anything
// else is bulletized and left-aligned.
func NarrativeCell(label, raw string) (string, Alignment) {
	if IsPlainText(label) {
		return raw, AlignLeft
	}
	c := SplitRating(raw)
	if c.Rating != "" && c.Description == "" {
		return c.Rating, AlignCenter
	}
	if c.Description != "" {
		return Bulletize(c.Description), AlignLeft
	}
	return Bulletize(raw), AlignLeft
}
