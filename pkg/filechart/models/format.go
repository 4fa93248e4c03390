package models

// Format identifies the source format of a dataset.
type Format string

const (
	// FormatCSV is comma-delimited text (.csv, .txt).
	FormatCSV Format = "csv"
	// FormatTSV is tab-delimited text (.tsv).
	FormatTSV Format = "tsv"
	// FormatJSON is a JSON document (.json).
	FormatJSON Format = "json"
	// FormatYAML is a YAML document (.yaml, .yml).
	FormatYAML Format = "yaml"
	// FormatXML is an XML document (.xml).
	FormatXML Format = "xml"
	// FormatSpreadsheet is a workbook (.xls, .xlsx); only the first sheet is read.
	FormatSpreadsheet Format = "spreadsheet"
)

// Delimiter returns the field delimiter for delimited text formats, or 0.
func (f Format) Delimiter() rune {
	switch f {
	case FormatCSV:
		return ','
	case FormatTSV:
		return '\t'
	}
	return 0
}

// Binary reports whether the format is read from binary content.
func (f Format) Binary() bool {
	return f == FormatSpreadsheet
}
