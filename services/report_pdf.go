package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateValidationReportPDF creates a printable PDF summary of a
// validation run: header, per-count summary table and one row per finding,
// errors before warnings.
func GenerateValidationReportPDF(result *ValidationResult, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, result, generatedAt)
	addReportSummary(m, result)
	addFindingsHeader(m)
	for _, findings := range [][]ValidationError{result.Errors, result.Warnings} {
		for _, e := range findings {
			addFindingRow(m, e)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto, result *ValidationResult, generatedAt time.Time) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("GadgetGuard Validation Report", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Template: %s", TypeLabel(result.TemplateType)), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addReportSummary(m core.Maroto, result *ValidationResult) {
	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	entries := []struct {
		label string
		value int
	}{
		{"Total Rows", result.TotalRows},
		{"Valid Rows", result.ValidRows},
		{"Invalid Rows", result.InvalidRows},
		{"Errors", len(result.Errors)},
		{"Warnings", len(result.Warnings)},
	}
	for _, entry := range entries {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(
					text.New(entry.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(fmt.Sprintf("%d", entry.value), valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(6))
}

func addFindingsHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Row", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Field", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Value", headerTextLeft)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Finding", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Severity", headerText)).WithStyle(&headerCell),
		),
	)
}

func addFindingRow(m core.Maroto, e ValidationError) {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left

	var cellStyle *props.Cell
	if e.Severity == SeverityWarning {
		bg := &props.Color{Red: 254, Green: 243, Blue: 199}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	colRow := col.New(1).Add(text.New(fmt.Sprintf("%d", e.Row), baseText))
	colField := col.New(2).Add(text.New(e.Field, leftText))
	colValue := col.New(3).Add(text.New(e.Value, leftText))
	colMsg := col.New(5).Add(text.New(e.Message, leftText))
	colSev := col.New(1).Add(text.New(string(e.Severity), baseText))

	if cellStyle != nil {
		colRow = colRow.WithStyle(cellStyle)
		colField = colField.WithStyle(cellStyle)
		colValue = colValue.WithStyle(cellStyle)
		colMsg = colMsg.WithStyle(cellStyle)
		colSev = colSev.WithStyle(cellStyle)
	}

	m.AddRows(row.New(6).Add(colRow, colField, colValue, colMsg, colSev))
}
