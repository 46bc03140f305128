package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one data row of an uploaded document, keyed by field machine key.
// Row is the 1-based document row number the data came from, used in error
// reporting.
type Record struct {
	Row    int               `json:"row"`
	Values map[string]string `json:"values"`
}

// ParseUpload reads an uploaded template file into raw rows. The format is
// chosen by file extension: .csv goes through the line parser, .xlsx through
// excelize. Anything else is rejected.
func ParseUpload(fileName string, file io.Reader) ([][]string, error) {
	lower := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		raw, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("read csv upload: %w", err)
		}
		return parseCSVDocument(string(raw)), nil
	case strings.HasSuffix(lower, ".xlsx"):
		return parseExcelDocument(file)
	default:
		return nil, fmt.Errorf("unsupported file format %q: must be .csv or .xlsx", fileName)
	}
}

// parseCSVDocument splits document text into lines and tokenizes each line.
func parseCSVDocument(doc string) [][]string {
	lines := splitLines(doc)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, parseCSVLine(line))
	}
	return rows
}

// parseExcelDocument reads the first sheet of an xlsx upload into raw rows.
func parseExcelDocument(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("open excel upload: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

// ParseRecords maps raw document rows into keyed records. The fixed header
// block (rows 1-5) is never data; row 3, the field name row, supplies the
// column-to-key mapping via NormalizeKey. Rows with all-empty cells are
// dropped, and each surviving record keeps its original document row number,
// starting at row 6. A document shorter than the header block yields zero
// records.
func ParseRecords(rows [][]string) []Record {
	if len(rows) <= headerRowCount {
		return nil
	}

	keys := make([]string, len(rows[2]))
	for i, label := range rows[2] {
		keys[i] = NormalizeKey(label)
	}

	var records []Record
	for idx := headerRowCount; idx < len(rows); idx++ {
		row := rows[idx]
		values := make(map[string]string, len(keys))
		empty := true
		for col, key := range keys {
			if key == "" {
				continue
			}
			value := ""
			if col < len(row) {
				value = strings.TrimSpace(row[col])
			}
			if value != "" {
				empty = false
			}
			values[key] = value
		}
		if empty {
			continue
		}
		records = append(records, Record{Row: idx + 1, Values: values})
	}
	return records
}
