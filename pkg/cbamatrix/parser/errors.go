package parser

import "errors"

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoColumns indicates the template sheet carries no data at all.
var ErrNoColumns = errors.New("template has no columns")
