package cbamatrix

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/layout"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/parser"
	"github.com/xuri/excelize/v2"
)

// Result is a generated workbook.
type Result struct {
	// Data is the xlsx file content.
	Data []byte
	// Filename is the suggested download name.
	Filename string
	// Options is the number of option columns.
	Options int
	// Attributes is the number of weighted construction-consideration rows.
	Attributes int
}

// Generate converts template bytes into the three-sheet CBA workbook.
// It has no side effects; either a complete workbook is returned or an error.
func Generate(data []byte, req Request, opts Options) (*Result, error) {
	log := opts.logger()

	table, err := readTable(data, req.SheetName)
	if err != nil {
		return nil, err
	}
	log.Debug("template read",
		"sheet", table.SheetName,
		"options", len(table.Options),
		"rows", len(table.Rows))

	at := opts.now()
	f, manifest, err := layout.Compose(layout.Document{
		Purpose:         req.Purpose,
		ProjectName:     req.ProjectName,
		ProjectLocation: req.ProjectLocation,
		Date:            at,
		Table:           table,
	})
	if err != nil {
		return nil, fmt.Errorf("compose workbook: %w", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	log.Debug("workbook composed",
		"attributes", len(manifest.Matrix.Attributes),
		"matrix_rows", manifest.Matrix.EndRow,
		"bytes", buf.Len())

	return &Result{
		Data:       buf.Bytes(),
		Filename:   OutputFilename(req.Purpose, req.ProjectName, at),
		Options:    len(table.Options),
		Attributes: len(manifest.Matrix.Attributes),
	}, nil
}

func readTable(data []byte, sheetName string) (*models.TemplateTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewTemplateParseError(sheetName, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	table, err := parser.ReadTemplate(f, sheetName)
	if err != nil {
		return nil, NewTemplateParseError(sheetName, err)
	}
	return table, nil
}
