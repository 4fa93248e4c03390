package filechart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// ErrUnsupportedFormat indicates the file extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// ErrEmptyDataset indicates the input yields no rows.
var ErrEmptyDataset = errors.New("empty dataset")

// ParseError represents a failure to parse or normalize an uploaded file.
type ParseError struct {
	Format models.Format
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q (%s): %v", e.Source, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(source string, format models.Format, err error) *ParseError {
	return &ParseError{
		Format: format,
		Source: source,
		Err:    err,
	}
}

// ErrSuperseded indicates an upload finished after a newer one had started.
var ErrSuperseded = errors.New("upload superseded by a newer upload")

// ErrNotReady indicates the chart roles are not assigned yet.
var ErrNotReady = errors.New("chart roles not assigned")
