// Package parser provides the per-format file parsers.
//
// Each parser returns a raw value made of []any, *Object, string, float64,
// int64, bool and nil. Turning that value into rows is left to the normalizer.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

// ErrNoRecords indicates the input holds no record collection.
var ErrNoRecords = errors.New("no records found")

// extFormats maps lower-cased file extensions to formats.
var extFormats = map[string]models.Format{
	".csv":  models.FormatCSV,
	".txt":  models.FormatCSV,
	".tsv":  models.FormatTSV,
	".json": models.FormatJSON,
	".yaml": models.FormatYAML,
	".yml":  models.FormatYAML,
	".xml":  models.FormatXML,
	".xls":  models.FormatSpreadsheet,
	".xlsx": models.FormatSpreadsheet,
}

// DetectFormat selects a format from the file extension, case-insensitively.
func DetectFormat(name string) (models.Format, bool) {
	f, ok := extFormats[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// Extensions returns the accepted file extensions.
func Extensions() []string {
	return []string{".csv", ".tsv", ".txt", ".json", ".yaml", ".yml", ".xml", ".xls", ".xlsx"}
}

// Parse parses data in the given format.
func Parse(format models.Format, data []byte) (any, error) {
	switch format {
	case models.FormatCSV, models.FormatTSV:
		return ParseDelimited(data, format.Delimiter())
	case models.FormatJSON:
		return ParseJSON(data)
	case models.FormatYAML:
		return ParseYAML(data)
	case models.FormatXML:
		return ParseXML(data)
	case models.FormatSpreadsheet:
		return ParseSpreadsheet(data)
	}
	return nil, fmt.Errorf("no parser for format %q", format)
}
