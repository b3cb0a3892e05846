package models

// Section is the semantic bucket a template row is classified into.
type Section string

const (
	// SectionDescription holds narrative rows such as Scheme or Advantages.
	SectionDescription Section = "description"
	// SectionConsideration holds rated construction-consideration rows.
	SectionConsideration Section = "construction_consideration"
	// SectionOther holds unrecognized rows; they render inside the considerations band.
	SectionOther Section = "other"
)
