package cbamatrix

import "strings"

// Input field names, in the order they are reported.
const (
	FieldPurpose         = "Purpose"
	FieldProjectName     = "Project Name"
	FieldProjectLocation = "Project Location"
	FieldTemplate        = "Template XLSX"
)

// Purpose presets offered by the form. PurposeOther asks for free text.
const PurposeOther = "Other"

// PurposePresets lists the selectable purposes.
var PurposePresets = []string{
	"Deep Foundation System",
	"Support of Excavation Systems",
	"Underpinning",
	"Ground Improvement",
	PurposeOther,
}

// ResolvePurpose returns the effective purpose for a preset choice.
func ResolvePurpose(choice, other string) string {
	if strings.TrimSpace(choice) == PurposeOther {
		return strings.TrimSpace(other)
	}
	return strings.TrimSpace(choice)
}

// Normalize returns req with surrounding whitespace trimmed.
func (r Request) Normalize() Request {
	r.Purpose = strings.TrimSpace(r.Purpose)
	r.ProjectName = strings.TrimSpace(r.ProjectName)
	r.ProjectLocation = strings.TrimSpace(r.ProjectLocation)
	r.SheetName = strings.TrimSpace(r.SheetName)
	return r
}

// Validate reports every missing required input at once.
// It returns nil or a *ValidationError.
func Validate(req Request, hasTemplate bool) error {
	req = req.Normalize()
	var missing []string
	if req.Purpose == "" {
		missing = append(missing, FieldPurpose)
	}
	if req.ProjectName == "" {
		missing = append(missing, FieldProjectName)
	}
	if req.ProjectLocation == "" {
		missing = append(missing, FieldProjectLocation)
	}
	if !hasTemplate {
		missing = append(missing, FieldTemplate)
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
