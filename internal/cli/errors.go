package cli

import (
	"errors"
	"fmt"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix"
)

// CLIError is a user-facing error with an optional hint.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with exit code 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts generation errors into CLIErrors with hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var verr *cbamatrix.ValidationError
	if errors.As(err, &verr) {
		return &CLIError{
			Message:  verr.Error(),
			Hint:     "Pass --purpose, --project-name and --project-location",
			ExitCode: 2,
		}
	}

	switch {
	case errors.Is(err, cbamatrix.ErrInvalidFormat):
		return NewCLIError("template is not a readable xlsx workbook", "Save the template as .xlsx or .xlsm and retry", err)
	case errors.Is(err, cbamatrix.ErrSheetNotFound):
		return NewCLIError("template sheet not found", "Run 'cbamatrix inspect' without --sheet to see the first sheet", err)
	case errors.Is(err, cbamatrix.ErrNoColumns):
		return NewCLIError("template sheet is empty", "Column A holds row labels; each option needs its own column", err)
	}

	var perr *cbamatrix.TemplateParseError
	if errors.As(err, &perr) {
		return NewCLIError("could not read template", "", err)
	}
	return err
}
