package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TemplateVersion is the schema version tag embedded in the metadata row.
	TemplateVersion = "1.0"

	// templateFilePrefix is the product prefix used in generated file names.
	templateFilePrefix = "gadgetguard"

	// headerRowCount is the fixed number of header rows in every generated
	// document: metadata, section names, field names, validation rules,
	// example values.
	headerRowCount = 5

	csvBlankRows   = 3
	excelBlankRows = 50
)

// TemplateGenerator renders a registry schema into downloadable upload
// templates. The clock is injectable so generated timestamps and file names
// are deterministic under test.
type TemplateGenerator struct {
	registry *SchemaRegistry
	now      func() time.Time
}

// NewTemplateGenerator returns a generator backed by the given registry.
func NewTemplateGenerator(registry *SchemaRegistry) *TemplateGenerator {
	return &TemplateGenerator{registry: registry, now: time.Now}
}

// FileName builds the download name for a template artifact, e.g.
// "gadgetguard_devices_template_2026-08-31.csv".
func (g *TemplateGenerator) FileName(t TemplateType, ext string) string {
	return fmt.Sprintf("%s_%s_template_%s.%s",
		templateFilePrefix, t, g.now().Format("2006-01-02"), ext)
}

// CSV renders the template for a type as delimited text: the 5-row header
// block followed by blank data rows.
func (g *TemplateGenerator) CSV(t TemplateType) ([]byte, error) {
	rows, err := g.headerRows(t)
	if err != nil {
		return nil, err
	}

	fields, _ := g.registry.FieldsFor(t)
	blank := make([]string, len(fields))
	for i := 0; i < csvBlankRows; i++ {
		rows = append(rows, blank)
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(encodeCSVRow(row))
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

// headerRows builds the 5 header rows shared by the CSV and Excel outputs.
// Every row is sized to the flattened field count except the metadata row,
// which is a single informational cell.
func (g *TemplateGenerator) headerRows(t TemplateType) ([][]string, error) {
	sections, err := g.registry.SectionsFor(t)
	if err != nil {
		return nil, err
	}
	fields, err := g.registry.FieldsFor(t)
	if err != nil {
		return nil, err
	}

	metadata := fmt.Sprintf(
		"GadgetGuard bulk upload template, type=%s, version=%s, category=%s, generated=%s, fill in the rows below the header block and leave rows 1-5 unchanged",
		t, TemplateVersion, g.registry.CategoryFor(t), g.now().UTC().Format(time.RFC3339))

	sectionRow := make([]string, len(fields))
	col := 0
	for _, s := range sections {
		if len(s.Fields) == 0 {
			continue
		}
		sectionRow[col] = s.Name
		col += len(s.Fields)
	}

	nameRow := make([]string, len(fields))
	ruleRow := make([]string, len(fields))
	exampleRow := make([]string, len(fields))
	for i, f := range fields {
		nameRow[i] = f.Label
		ruleRow[i] = fieldRule(f)
		exampleRow[i] = f.Example
	}

	return [][]string{
		{metadata},
		sectionRow,
		nameRow,
		ruleRow,
		exampleRow,
	}, nil
}

// fieldRule encodes a field's type and constraints into the self-documenting
// validation rule row.
func fieldRule(f TemplateField) string {
	parts := []string{string(f.Type)}
	if f.Required {
		parts = append(parts, "required")
	}
	if f.MaxLength > 0 {
		parts = append(parts, "max:"+strconv.Itoa(f.MaxLength))
	}
	if f.Pattern != nil {
		parts = append(parts, "pattern:"+f.Pattern.String())
	}
	if len(f.Options) > 0 {
		parts = append(parts, "options:"+strings.Join(f.Options, "|"))
	}
	return strings.Join(parts, ", ")
}
