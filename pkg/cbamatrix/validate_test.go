package cbamatrix

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		req         Request
		hasTemplate bool
		missing     []string
	}{
		{"complete", Request{Purpose: "Underpinning", ProjectName: "A", ProjectLocation: "B"}, true, nil},
		{"everything missing", Request{}, false,
			[]string{FieldPurpose, FieldProjectName, FieldProjectLocation, FieldTemplate}},
		{"whitespace counts as empty", Request{Purpose: "  ", ProjectName: "A", ProjectLocation: "\t"}, true,
			[]string{FieldPurpose, FieldProjectLocation}},
		{"template only", Request{Purpose: "P", ProjectName: "A", ProjectLocation: "B"}, false,
			[]string{FieldTemplate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req, tt.hasTemplate)
			if tt.missing == nil {
				if err != nil {
					t.Fatalf("Validate = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate = %v, want ValidationError", err)
			}
			if !reflect.DeepEqual(verr.Missing, tt.missing) {
				t.Errorf("missing = %v, want %v", verr.Missing, tt.missing)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Missing: []string{FieldProjectName, FieldTemplate}}
	if got := err.Error(); got != "Please fill in: Project Name, Template XLSX" {
		t.Errorf("Error() = %q", got)
	}
}

func TestResolvePurpose(t *testing.T) {
	tests := []struct {
		choice, other, want string
	}{
		{"Underpinning", "ignored", "Underpinning"},
		{PurposeOther, "  Slope Stabilization ", "Slope Stabilization"},
		{PurposeOther, "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := ResolvePurpose(tt.choice, tt.other); got != tt.want {
			t.Errorf("ResolvePurpose(%q, %q) = %q, want %q", tt.choice, tt.other, got, tt.want)
		}
	}
}
