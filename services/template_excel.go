package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const templateColumnWidth = 22.0

// Excel renders the template for a type as an .xlsx workbook: the same 5-row
// header block as the CSV output materialized into a sheet grid, with fixed
// column widths, the header block frozen, and real dropdown validation on
// dropdown columns.
func (g *TemplateGenerator) Excel(t TemplateType) ([]byte, error) {
	rows, err := g.headerRows(t)
	if err != nil {
		return nil, err
	}
	fields, _ := g.registry.FieldsFor(t)
	if len(fields) == 0 {
		return nil, fmt.Errorf("template type %q has no fields", t)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := TypeLabel(t)
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// --- Styles ---
	metadataStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 10, Color: "#6B7280"},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorders(),
	})
	fieldNameStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	ruleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 8, Color: "#6B7280"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	exampleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true, Size: 10, Color: "#047857"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	columns := columnLetters(len(fields))

	// Write the header block
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cell := fmt.Sprintf("%s%d", columns[colIdx], rowIdx+1)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	lastCol := columns[len(columns)-1]
	f.SetCellStyle(sheetName, "A1", "A1", metadataStyle)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", sectionStyle)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", fieldNameStyle)
	f.SetCellStyle(sheetName, "A4", lastCol+"4", ruleStyle)
	f.SetCellStyle(sheetName, "A5", lastCol+"5", exampleStyle)

	for _, col := range columns {
		f.SetColWidth(sheetName, col, col, templateColumnWidth)
	}

	// Dropdown validation over the pre-sized data block
	for i, field := range fields {
		if field.Type != FieldDropdown || len(field.Options) == 0 {
			continue
		}
		col := columns[i]
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s%d:%s%d", col, headerRowCount+1, col, headerRowCount+excelBlankRows)
		dv.SetDropList(field.Options)
		f.AddDataValidation(sheetName, dv)
	}

	// Freeze the header block so it stays visible during data entry
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      headerRowCount,
		TopLeftCell: fmt.Sprintf("A%d", headerRowCount+1),
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel template: %w", err)
	}
	return buf.Bytes(), nil
}

// columnLetters returns Excel column letters for n columns: A, B, ... Z, AA, AB ...
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
