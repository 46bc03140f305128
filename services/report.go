package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateValidationReport renders a ValidationResult as a CSV document: a
// short summary block followed by one table row per finding, errors before
// warnings.
func GenerateValidationReport(result *ValidationResult) []byte {
	var sb strings.Builder

	writeRow := func(cells ...string) {
		sb.WriteString(encodeCSVRow(cells))
		sb.WriteString("\n")
	}

	writeRow("GadgetGuard Validation Report")
	writeRow("Template Type", string(result.TemplateType))
	writeRow("Total Rows", strconv.Itoa(result.TotalRows))
	writeRow("Valid Rows", strconv.Itoa(result.ValidRows))
	writeRow("Invalid Rows", strconv.Itoa(result.InvalidRows))
	writeRow("Errors", strconv.Itoa(len(result.Errors)))
	writeRow("Warnings", strconv.Itoa(len(result.Warnings)))
	writeRow()
	writeRow("Row", "Column", "Field", "Value", "Error", "Severity")

	for _, findings := range [][]ValidationError{result.Errors, result.Warnings} {
		for _, e := range findings {
			writeRow(strconv.Itoa(e.Row), e.Column, e.Field, e.Value, e.Message, string(e.Severity))
		}
	}

	return []byte(sb.String())
}

// GenerateErrorReport creates a downloadable .xlsx file from validation
// findings, errors before warnings.
func GenerateErrorReport(errors, warnings []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Findings"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	warningStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#B45309"},
	})

	headers := []string{"Row #", "Column", "Field", "Value", "Error", "Severity"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	widths := []float64{8, 20, 22, 28, 55, 10}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	rowNum := 2
	for _, findings := range [][]ValidationError{errors, warnings} {
		for _, e := range findings {
			row := strconv.Itoa(rowNum)
			f.SetCellValue(sheet, "A"+row, e.Row)
			f.SetCellValue(sheet, "B"+row, e.Column)
			f.SetCellValue(sheet, "C"+row, e.Field)
			f.SetCellValue(sheet, "D"+row, e.Value)
			f.SetCellValue(sheet, "E"+row, e.Message)
			f.SetCellValue(sheet, "F"+row, string(e.Severity))
			if e.Severity == SeverityWarning {
				f.SetCellStyle(sheet, "A"+row, "F"+row, warningStyle)
			}
			rowNum++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
