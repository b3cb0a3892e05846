package models

// CellContent is a raw template cell split into its rating and description parts.
type CellContent struct {
	// Raw is the cell text as read from the template.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
	// Rating is one of Poor, Fair, Good, Very Good, Excellent, or "".
	Rating string `json:"rating,omitempty" yaml:"rating,omitempty"`
	// Description is the text remaining after the rating token.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Attribute is a construction-consideration row that takes part in weighting.
type Attribute struct {
	// Name is the row label.
	Name string `json:"name" yaml:"name"`
	// MatrixRow is the 1-based Matrix sheet row holding the rating cells.
	MatrixRow int `json:"matrix_row" yaml:"matrix_row"`
}
