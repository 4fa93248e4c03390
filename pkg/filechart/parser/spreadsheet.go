package parser

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads the first sheet of a workbook.
// The data region is cropped to its bounding box; its first row is the header.
func ParseSpreadsheet(data []byte) ([]any, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRecords
	}
	return ExtractRows(f, sheets[0])
}

// ExtractRows extracts header-keyed records from a sheet.
// Empty cells are left out of a record and empty rows are skipped.
func ExtractRows(f *excelize.File, sheetName string) ([]any, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	bounds, ok := DetectTable(rows, DefaultTableParams())
	if !ok {
		return nil, ErrNoRecords
	}

	headers := headerRow(rows[bounds.MinRow], bounds)

	var result []any
	for rowIdx := bounds.MinRow + 1; rowIdx <= bounds.MaxRow; rowIdx++ {
		row := rows[rowIdx]
		obj := NewObject()

		for colIdx := bounds.MinCol; colIdx <= bounds.MaxCol && colIdx < len(row); colIdx++ {
			cellValue := row[colIdx]
			if cellValue == "" {
				continue
			}
			obj.Set(headers[colIdx-bounds.MinCol], parseValue(cellValue))
		}

		if obj.Len() > 0 {
			result = append(result, obj)
		}
	}

	return result, nil
}

// headerRow returns the header names for the bounded columns.
// Blank headers are named column_N after their 1-based position.
func headerRow(row []string, bounds TableBounds) []string {
	headers := make([]string, 0, bounds.MaxCol-bounds.MinCol+1)
	for colIdx := bounds.MinCol; colIdx <= bounds.MaxCol; colIdx++ {
		name := ""
		if colIdx < len(row) {
			name = row[colIdx]
		}
		if name == "" {
			name = fmt.Sprintf("column_%d", colIdx-bounds.MinCol+1)
		}
		headers = append(headers, name)
	}
	return headers
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
