package formula

// Ref returns a plain cross-sheet reference formula.
func Ref(sheet, cell string) string {
	return SheetRef(sheet, cell)
}

// ProsCons concatenates "Pros:" and "Cons:" blocks from the Advantages and
// Disadvantages cells. An empty reference means the row is absent and its block
// is omitted; with neither row the formula is the empty string.
func ProsCons(advRef, disRef string) string {
	switch {
	case advRef != "" && disRef != "":
		return sprintf(`IF(OR(LEN(%[1]s)>0,LEN(%[2]s)>0),`+
			`IF(LEN(%[1]s)>0,"Pros:"&CHAR(10)&%[1]s,"")`+
			`&IF(AND(LEN(%[1]s)>0,LEN(%[2]s)>0),CHAR(10)&CHAR(10),"")`+
			`&IF(LEN(%[2]s)>0,"Cons:"&CHAR(10)&%[2]s,""),"")`, advRef, disRef)
	case advRef != "":
		return sprintf(`IF(LEN(%[1]s)>0,"Pros:"&CHAR(10)&%[1]s,"")`, advRef)
	case disRef != "":
		return sprintf(`IF(LEN(%[1]s)>0,"Cons:"&CHAR(10)&%[1]s,"")`, disRef)
	default:
		return `""`
	}
}
