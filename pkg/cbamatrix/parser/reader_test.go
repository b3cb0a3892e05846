package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func newSheet(t *testing.T, cells map[string]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for ref, v := range cells {
		if err := f.SetCellValue("Sheet1", ref, v); err != nil {
			t.Fatalf("set %s: %v", ref, err)
		}
	}
	return f
}

func TestReadTemplate(t *testing.T) {
	f := newSheet(t, map[string]string{
		"A2": "Attribute", "B2": " Drilled Shafts ", "C2": "Driven Piles", "D2": "",
		"A3": " Scheme ", "B3": "Shafts", "C3": "Piles",
		"A5": "Cost", "B5": "Good", "D5": "Poor - expensive",
	})
	defer f.Close()

	table, err := ReadTemplate(f, "")
	if err != nil {
		t.Fatalf("ReadTemplate failed: %v", err)
	}

	if table.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q", table.SheetName)
	}
	if table.LabelHeader != "Attribute" {
		t.Errorf("LabelHeader = %q", table.LabelHeader)
	}
	wantOptions := []string{"Drilled Shafts", "Driven Piles", ""}
	if len(table.Options) != len(wantOptions) {
		t.Fatalf("Options = %q", table.Options)
	}
	for i, o := range wantOptions {
		if table.Options[i] != o {
			t.Errorf("Options[%d] = %q, want %q", i, table.Options[i], o)
		}
	}

	// Illustration is synthesized first; the blank row 4 is skipped.
	labels := table.Labels()
	wantLabels := []string{"Illustration", "Scheme", "Cost"}
	if len(labels) != len(wantLabels) {
		t.Fatalf("Labels = %q", labels)
	}
	for i, l := range wantLabels {
		if labels[i] != l {
			t.Errorf("Labels[%d] = %q, want %q", i, labels[i], l)
		}
	}
	if table.Rows[0].SourceRow != 0 {
		t.Errorf("synthetic row has SourceRow %d", table.Rows[0].SourceRow)
	}
	if table.Rows[2].SourceRow != 5 {
		t.Errorf("Cost SourceRow = %d, want 5", table.Rows[2].SourceRow)
	}
	if got := table.Cell(2, 2); got != "Poor - expensive" {
		t.Errorf("Cell(2,2) = %q", got)
	}
	if got := table.Cell(2, 1); got != "" {
		t.Errorf("Cell(2,1) = %q, want empty", got)
	}
}

func TestReadTemplateKeepsExistingIllustration(t *testing.T) {
	f := newSheet(t, map[string]string{
		"A1": "", "B1": "Option A",
		"A2": "Scheme", "B2": "x",
		"A3": "illustration", "B3": "see sketch",
	})
	defer f.Close()

	table, err := ReadTemplate(f, "Sheet1")
	if err != nil {
		t.Fatalf("ReadTemplate failed: %v", err)
	}
	if len(table.Rows) != 2 || table.Rows[1].Label != "illustration" {
		t.Errorf("rows = %+v", table.Rows)
	}
}

func TestReadTemplateLabelsOnly(t *testing.T) {
	f := newSheet(t, map[string]string{"A1": "Attribute", "A2": "Cost"})
	defer f.Close()

	table, err := ReadTemplate(f, "")
	if err != nil {
		t.Fatalf("ReadTemplate failed: %v", err)
	}
	if len(table.Options) != 0 {
		t.Errorf("Options = %q, want none", table.Options)
	}
	if labels := table.Labels(); len(labels) != 2 || labels[1] != "Cost" {
		t.Errorf("Labels = %q", labels)
	}
	if len(table.Rows[1].Cells) != 0 {
		t.Errorf("Cost cells = %q, want none", table.Rows[1].Cells)
	}
}

func TestReadTemplateErrors(t *testing.T) {
	tests := []struct {
		name  string
		cells map[string]string
		sheet string
		want  error
	}{
		{"empty sheet", map[string]string{}, "", ErrNoColumns},
		{"missing sheet", map[string]string{"A1": "x", "B1": "y"}, "Nope", ErrSheetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSheet(t, tt.cells)
			defer f.Close()
			if _, err := ReadTemplate(f, tt.sheet); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
