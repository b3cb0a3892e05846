package models

// InspectedRow is a classified template row.
type InspectedRow struct {
	Label   string        `json:"label" yaml:"label"`
	Section Section       `json:"section" yaml:"section"`
	Cells   []CellContent `json:"cells" yaml:"cells"`
}

// Inspection describes how a template will be laid out, without composing a workbook.
type Inspection struct {
	// BookName is the source file name, when known.
	BookName string `json:"book_name,omitempty" yaml:"book_name,omitempty"`
	// SheetName is the sheet the template was read from.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	// Options are the option display names.
	Options []string `json:"options" yaml:"options"`
	// Rows are the classified rows in source order.
	Rows []InspectedRow `json:"rows" yaml:"rows"`
	// Attributes are the labels that enter the weighting model, in order.
	Attributes []string `json:"attributes" yaml:"attributes"`
	// SyntheticIllustration is true when the Illustration row was added by the reader.
	SyntheticIllustration bool `json:"synthetic_illustration,omitempty" yaml:"synthetic_illustration,omitempty"`
}
