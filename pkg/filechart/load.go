package filechart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
	"github.com/ukaji3/filechart-go/pkg/filechart/parser"
)

// Load reads a tabular file and normalizes it into a dataset.
func Load(path string, opts Options) (*models.Dataset, error) {
	if _, ok := parser.DetectFormat(path); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(filepath.Base(path), data, opts)
}

// LoadBytes detects the format from name, then parses and normalizes data as one unit.
// Any parse or normalize failure is returned as a *ParseError.
func LoadBytes(name string, data []byte, opts Options) (*models.Dataset, error) {
	format, ok := parser.DetectFormat(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	raw, err := parser.Parse(format, data)
	if err != nil {
		return nil, NewParseError(name, format, err)
	}

	ds, err := Normalize(raw, format, opts)
	if err != nil {
		return nil, NewParseError(name, format, err)
	}
	ds.Source = name
	return ds, nil
}
