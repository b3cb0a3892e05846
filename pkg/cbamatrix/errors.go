package cbamatrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/parser"
)

// ErrInvalidFormat indicates the uploaded bytes are not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Template shape errors, re-exported from the parser.
var (
	ErrSheetNotFound = parser.ErrSheetNotFound
	ErrNoColumns     = parser.ErrNoColumns
)

// TemplateParseError reports a template that cannot be turned into a table.
type TemplateParseError struct {
	Sheet string
	Err   error
}

func (e *TemplateParseError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("template parse error: %v", e.Err)
	}
	return fmt.Sprintf("template parse error in sheet %q: %v", e.Sheet, e.Err)
}

func (e *TemplateParseError) Unwrap() error {
	return e.Err
}

// NewTemplateParseError creates a new TemplateParseError.
func NewTemplateParseError(sheet string, err error) *TemplateParseError {
	return &TemplateParseError{
		Sheet: sheet,
		Err:   err,
	}
}

// ValidationError lists the required inputs that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Please fill in: " + strings.Join(e.Missing, ", ")
}
