package cbamatrix

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func templateBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write template: %v", err)
	}
	return buf.Bytes()
}

var sampleRows = [][]interface{}{
	{"", "Micropiles", "Jet Grouting", "Underpinning Pits"},
	{"Scheme", "Small piles", "Soilcrete", "Hand-dug pits"},
	{"Advantages", "Low headroom", "No spoils", "Cheap"},
	{"Disadvantages", "Slow", "Spoil heave", "Labor heavy"},
	{"Cost", "Good - moderate", "Poor", "Excellent"},
	{"Spoils Handling", "Fair", "3 - some slurry", "Very Good"},
}

func testOptions() Options {
	return Options{
		Now:    func() time.Time { return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC) },
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGenerate(t *testing.T) {
	req := Request{Purpose: "Underpinning", ProjectName: "Elm St", ProjectLocation: "Cambridge, MA"}
	result, err := Generate(templateBytes(t, sampleRows), req, testOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Filename != "TEG CBA Matrix-Underpinning-Elm St-10182026.xlsx" {
		t.Errorf("Filename = %q", result.Filename)
	}
	if result.Options != 3 || result.Attributes != 2 {
		t.Errorf("options = %d, attributes = %d", result.Options, result.Attributes)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 3 || got[2] != "Summary CBA" {
		t.Errorf("sheets = %v", got)
	}
	// The synthesized Illustration row comes first in the description band.
	if v, _ := f.GetCellValue("Matrix", "B5"); v != "Illustration" {
		t.Errorf("Matrix!B5 = %q", v)
	}
	if v, _ := f.GetCellValue("Matrix", "D11"); v != "Good" {
		t.Errorf("Matrix!D11 = %q, want Good", v)
	}
	if v, _ := f.GetCellValue("Matrix", "D2"); v != "Date: October 18, 2026" {
		t.Errorf("Matrix!D2 = %q", v)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	data := templateBytes(t, sampleRows)
	req := Request{Purpose: "Underpinning", ProjectName: "Elm St", ProjectLocation: "Cambridge"}

	a, err := Generate(data, req, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(data, req, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	fa, _ := excelize.OpenReader(bytes.NewReader(a.Data))
	fb, _ := excelize.OpenReader(bytes.NewReader(b.Data))
	defer fa.Close()
	defer fb.Close()
	for _, ref := range []string{"E3", "B7", "C2"} {
		sa, _ := fa.GetCellStyle("Weights & SAW", ref)
		sb, _ := fb.GetCellStyle("Weights & SAW", ref)
		if sa != sb {
			t.Errorf("style of %s differs between runs: %d vs %d", ref, sa, sb)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	req := Request{Purpose: "P", ProjectName: "N", ProjectLocation: "L"}

	_, err := Generate([]byte("definitely not a workbook"), req, testOptions())
	var perr *TemplateParseError
	if !errors.As(err, &perr) || !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("garbage bytes: err = %v", err)
	}

	if _, err := Generate(templateBytes(t, nil), req, testOptions()); !errors.Is(err, ErrNoColumns) {
		t.Errorf("empty sheet: err = %v", err)
	}

	req.SheetName = "Missing"
	if _, err := Generate(templateBytes(t, sampleRows), req, testOptions()); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("missing sheet: err = %v", err)
	}
}

func TestInspect(t *testing.T) {
	in, err := Inspect(templateBytes(t, sampleRows), "")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !in.SyntheticIllustration {
		t.Error("expected synthesized Illustration row")
	}
	if len(in.Attributes) != 2 || in.Attributes[1] != "Spoils Handling" {
		t.Errorf("attributes = %v", in.Attributes)
	}

	var cost, adv bool
	for _, r := range in.Rows {
		switch r.Label {
		case "Cost":
			cost = true
			if r.Cells[0].Rating != "Good" || r.Cells[0].Description != "moderate" {
				t.Errorf("Cost cell = %+v", r.Cells[0])
			}
		case "Advantages":
			adv = true
			if r.Cells[2].Description != "Cheap" {
				t.Errorf("Advantages cell = %+v", r.Cells[2])
			}
		}
	}
	if !cost || !adv {
		t.Error("expected Cost and Advantages rows")
	}
}

func TestGenerateTwoOptionTemplate(t *testing.T) {
	data := templateBytes(t, [][]interface{}{
		{"Label", "Option A", "Option B"},
		{"Description", "Auger cast", "Drilled"},
		{"Cost", "Good", "Excellent"},
		{"Advantages", "Cheap", "Stiff"},
		{"Disadvantages", "Soft soils", "Slow"},
	})
	req := Request{Purpose: "Deep Foundation System", ProjectName: "P", ProjectLocation: "L"}
	result, err := Generate(data, req, testOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	panes, err := f.GetPanes("Matrix")
	if err != nil {
		t.Fatal(err)
	}
	if !panes.Freeze || panes.TopLeftCell != "C5" {
		t.Errorf("Matrix panes = %+v", panes)
	}

	rows, err := f.GetRows("Summary CBA")
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, r := range rows[3:] {
		if len(r) > 0 && r[0] != "" {
			labels = append(labels, r[0])
		}
	}
	want := []string{"Illustration", "Option", "Description", "Score", "Summary"}
	if len(labels) != len(want) {
		t.Fatalf("summary labels = %q", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("summary label %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestGenerateLabelsOnlyTemplate(t *testing.T) {
	data := templateBytes(t, [][]interface{}{{"Attribute"}, {"Scheme"}, {"Cost"}})
	req := Request{Purpose: "P", ProjectName: "N", ProjectLocation: "L"}
	result, err := Generate(data, req, testOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Options != 0 || result.Attributes != 1 {
		t.Errorf("options = %d, attributes = %d", result.Options, result.Attributes)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Weights & SAW", "A2"); v != "Cost" {
		t.Errorf("Weights & SAW!A2 = %q, want Cost", v)
	}
}

func TestGenerateWeighsUnrecognizedLabels(t *testing.T) {
	data := templateBytes(t, [][]interface{}{
		{"", "Option A", "Option B"},
		{"Description", "Caissons", "Mat"},
		{"Cost", "Good", "Fair"},
		{"Durability", "Excellent", "Poor - thin cover"},
	})
	req := Request{Purpose: "P", ProjectName: "N", ProjectLocation: "L"}
	result, err := Generate(data, req, testOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Attributes != 2 {
		t.Errorf("attributes = %d, want 2", result.Attributes)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Illustration 5, Description 6, Cost 7-8, Durability 9-10.
	values := map[string]string{
		"Matrix!B9":        "Durability",
		"Matrix!C9":        "Excellent",
		"Matrix!D9":        "Poor",
		"Matrix!D10":       "thin cover",
		"Weights & SAW!A3": "Durability",
		"Weights & SAW!A4": "SAW Score",
	}
	for ref, want := range values {
		sheet, cell := splitRef(ref)
		if v, _ := f.GetCellValue(sheet, cell); v != want {
			t.Errorf("%s = %q, want %q", ref, v, want)
		}
	}

	in, err := Inspect(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(in.Attributes) != 2 || in.Attributes[1] != "Durability" {
		t.Errorf("inspect attributes = %v", in.Attributes)
	}
}

// Single-attribute templates keep every formula within what excelize can
// evaluate; SUMPRODUCT over a boolean mask spanning several rows is not.
func TestGenerateScores(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []interface{}
		wantSAW   []float64
		wantRank  []string
		wantScore []string
	}{
		{"all excellent", []interface{}{"Excellent", "Excellent"}, []float64{1, 1}, []string{"1", "1"}, []string{"10", "10"}},
		{"tied good", []interface{}{"Good", "Good"}, []float64{0.5, 0.5}, []string{"1", "1"}, []string{"5", "5"}},
		{"spread", []interface{}{"Excellent", "Poor"}, []float64{1, 0}, []string{"1", "2"}, []string{"10", "0"}},
		{"unrated", []interface{}{"", "Good - moderate"}, []float64{0, 0.5}, []string{"2", "1"}, []string{"0", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := templateBytes(t, [][]interface{}{
				{"", "Option A", "Option B"},
				append([]interface{}{"Cost"}, tt.ratings...),
			})
			req := Request{Purpose: "P", ProjectName: "N", ProjectLocation: "L"}
			result, err := Generate(data, req, testOptions())
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			f, err := excelize.OpenReader(bytes.NewReader(result.Data))
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			// One attribute: row 2 weighted, SAW 3, rank 4, score 5, weight sum 6.
			const sheet = "Weights & SAW"
			if got := calcFloat(t, f, sheet, "B6"); math.Abs(got-1) > 1e-9 {
				t.Errorf("weight sum = %v, want 1", got)
			}
			for j, col := range []string{"E", "F"} {
				if got := calcFloat(t, f, sheet, col+"3"); math.Abs(got-tt.wantSAW[j]) > 1e-9 {
					t.Errorf("SAW %s = %v, want %v", col, got, tt.wantSAW[j])
				}
				if got := calc(t, f, sheet, col+"4"); got != tt.wantRank[j] {
					t.Errorf("rank %s = %q, want %q", col, got, tt.wantRank[j])
				}
				if got := calc(t, f, sheet, col+"5"); got != tt.wantScore[j] {
					t.Errorf("score %s = %q, want %q", col, got, tt.wantScore[j])
				}
			}
		})
	}
}

func calc(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.CalcCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("CalcCellValue(%s!%s): %v", sheet, cell, err)
	}
	return v
}

func calcFloat(t *testing.T, f *excelize.File, sheet, cell string) float64 {
	t.Helper()
	v := calc(t, f, sheet, cell)
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		t.Fatalf("%s!%s = %q is not a number", sheet, cell, v)
	}
	return n
}

func splitRef(ref string) (sheet, cell string) {
	i := strings.LastIndex(ref, "!")
	return ref[:i], ref[i+1:]
}
