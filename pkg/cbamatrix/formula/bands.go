package formula

// Band is a half-open score interval [Lo, Hi) on the 0-10 scale with its fill colour.
type Band struct {
	Lo, Hi float64
	Color  string
}

// ScoreBands colour a 0-10 score. The last band is widened so 10 is included.
var ScoreBands = []Band{
	{Lo: 0, Hi: 2, Color: "FFC000"},
	{Lo: 2, Hi: 4, Color: "FFFF66"},
	{Lo: 4, Hi: 6, Color: "CCFF66"},
	{Lo: 6, Hi: 8, Color: "78FE66"},
	{Lo: 8, Hi: 11, Color: "19CB01"},
}

// FractionBands are ScoreBands re-expressed on the 0-1 scale.
var FractionBands = []Band{
	{Lo: 0, Hi: 0.2, Color: "FFC000"},
	{Lo: 0.2, Hi: 0.4, Color: "FFFF66"},
	{Lo: 0.4, Hi: 0.6, Color: "CCFF66"},
	{Lo: 0.6, Hi: 0.8, Color: "78FE66"},
	{Lo: 0.8, Hi: 1.01, Color: "19CB01"},
}

// InBand tests expr against the band bounds.
func InBand(expr string, b Band) string {
	return sprintf("AND(%s>=%s,%s<%s)", expr, num(b.Lo), expr, num(b.Hi))
}

// ScaledSAW scales a SAW score reference to 0-10.
func ScaledSAW(sawRef string) string {
	return "10*" + sawRef
}
