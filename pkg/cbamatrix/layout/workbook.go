package layout

import (
	"fmt"
	"time"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/formula"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
	"github.com/xuri/excelize/v2"
)

// bannerDateLayout renders dates like "October 18, 2026".
const bannerDateLayout = "January 02, 2006"

// Document is everything the composer needs for one workbook.
type Document struct {
	Purpose         string
	ProjectName     string
	ProjectLocation string
	Date            time.Time
	Table           *models.TemplateTable
}

// Title is the banner text of the Matrix and Summary CBA sheets.
func (d Document) Title() string {
	return "Choose-by-Advantage Matrix for the " + d.Purpose
}

// Manifest summarizes a composed workbook.
type Manifest struct {
	Matrix  *MatrixLayout
	Weights WeightsGeometry
}

// Compose builds the Matrix, Weights & SAW and Summary CBA sheets, in that order.
// Each sheet is composed only after the cells its formulas reference are placed.
func Compose(doc Document) (*excelize.File, *Manifest, error) {
	if doc.Table == nil {
		return nil, nil, fmt.Errorf("compose: nil template table")
	}

	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			f.Close()
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), formula.MatrixSheet); err != nil {
		return nil, nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{formula.WeightsSheet, formula.SummarySheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	styles := newStyleBook(f)

	matrix, err := composeMatrix(f, styles, doc)
	if err != nil {
		return nil, nil, err
	}
	weights, err := composeWeights(f, styles, matrix, doc.Table.Options)
	if err != nil {
		return nil, nil, err
	}
	if err := colorOptionHeaders(f, styles, matrix, weights); err != nil {
		return nil, nil, err
	}
	if err := composeSummary(f, styles, doc, matrix, weights); err != nil {
		return nil, nil, err
	}

	f.SetActiveSheet(0)
	fullCalc := true
	if err := f.SetCalcProps(&excelize.CalcPropsOptions{FullCalcOnLoad: &fullCalc}); err != nil {
		return nil, nil, fmt.Errorf("calc props: %w", err)
	}

	ok = true
	return f, &Manifest{Matrix: matrix, Weights: weights}, nil
}
