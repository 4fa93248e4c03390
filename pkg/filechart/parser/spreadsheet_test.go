package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Table starts at B2 with a blank row/column before it
	f.SetCellValue(sheetName, "B2", "name")
	f.SetCellValue(sheetName, "C2", "score")
	f.SetCellValue(sheetName, "B3", "A")
	f.SetCellValue(sheetName, "C3", 100)
	f.SetCellValue(sheetName, "B4", "B")
	f.SetCellValue(sheetName, "C4", 200.5)
	f.SetCellValue(sheetName, "B6", "C")

	// Save to temp file
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and extract
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	// Header row is consumed, blank row 5 is skipped
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	first := rows[0].(*Object)
	if keys := first.Keys(); len(keys) != 2 || keys[0] != "name" || keys[1] != "score" {
		t.Errorf("Expected keys [name score], got %v", keys)
	}
	if v, _ := first.Get("name"); v != "A" {
		t.Errorf("Expected 'A', got %v", v)
	}

	// Check numeric values
	if v, _ := first.Get("score"); v != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", v, v)
	}
	if v, _ := rows[1].(*Object).Get("score"); v != 200.5 {
		t.Errorf("Expected 200.5, got %v", v)
	}

	// Missing cells are absent
	if _, ok := rows[2].(*Object).Get("score"); ok {
		t.Errorf("Expected score to be absent in last row")
	}

	// Cleanup
	os.Remove(tmpFile)
}

func TestParseSpreadsheetFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "k")
	f.SetCellValue("Sheet1", "A2", "first")
	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Other", "A1", "k")
	f.SetCellValue("Other", "A2", "second")
	f.SetCellValue("Other", "A3", "third")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	rows, err := ParseSpreadsheet(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseSpreadsheet failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row from the first sheet, got %d", len(rows))
	}
	if v, _ := rows[0].(*Object).Get("k"); v != "first" {
		t.Errorf("Expected 'first', got %v", v)
	}
}

func TestParseSpreadsheetBlankHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "name")
	f.SetCellValue("Sheet1", "A2", "x")
	f.SetCellValue("Sheet1", "B2", 3)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	rows, err := ParseSpreadsheet(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseSpreadsheet failed: %v", err)
	}
	if v, ok := rows[0].(*Object).Get("column_2"); !ok || v != int64(3) {
		t.Errorf("Expected column_2 = 3, got %v (present: %v)", v, ok)
	}
}

func TestParseSpreadsheetInvalid(t *testing.T) {
	if _, err := ParseSpreadsheet(bytes.Repeat([]byte{0xd0, 0xcf}, 16)); err == nil {
		t.Errorf("Expected error for non-OOXML content")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
