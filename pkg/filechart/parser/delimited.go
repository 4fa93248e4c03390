package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseDelimited parses delimited text whose first record is the header.
// Values are kept as strings. Records shorter than the header leave the
// trailing keys absent; extra fields are ignored.
func ParseDelimited(data []byte, comma rune) ([]any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoRecords
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoRecords
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []any
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}

		obj := NewObject()
		for i, val := range record {
			if i >= len(headers) {
				break
			}
			obj.Set(headers[i], val)
		}
		rows = append(rows, obj)
	}

	return rows, nil
}

// isBlankRecord reports whether a record is a whitespace-only line.
func isBlankRecord(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}
