package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FieldType enumerates the supported column types in upload templates.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldURL      FieldType = "url"
	FieldDropdown FieldType = "dropdown"
)

// TemplateField describes one column in an upload template.
type TemplateField struct {
	Key         string         // machine key, unique within a template type
	Label       string         // human-readable header shown in generated files
	Type        FieldType      // drives cell validation
	Required    bool           // empty cells are an error when true
	MaxLength   int            // text fields only; 0 = unlimited
	Pattern     *regexp.Regexp // optional extra constraint, checked on top of the type rules
	Options     []string       // dropdown values, matched case-insensitively
	Example     string         // shown on the example row
	Description string         // optional help text
}

// TemplateSection is a named, ordered group of fields. Section order defines
// column order in generated documents and in parsed records.
type TemplateSection struct {
	Name   string
	Fields []TemplateField
}

// TemplateType identifies which schema applies to an upload.
type TemplateType string

const (
	TemplateDevices             TemplateType = "devices"
	TemplateMarketplaceListings TemplateType = "marketplace_listings"
	TemplateLostReports         TemplateType = "lost_reports"
	TemplateFoundReports        TemplateType = "found_reports"
	TemplateInsurancePolicies   TemplateType = "insurance_policies"
)

// ErrUnknownTemplateType is returned when a template type has no registered
// schema. Unsupported types fail loudly instead of borrowing another type's
// schema.
var ErrUnknownTemplateType = errors.New("unknown template type")

// SchemaRegistry is an immutable catalog of template schemas. Build one with
// NewSchemaRegistry (built-in catalog) or NewSchemaRegistryWith (synthetic
// schemas for tests) and share it freely; it is safe for concurrent use.
type SchemaRegistry struct {
	sections map[TemplateType][]TemplateSection
	unique   map[TemplateType][]string
	category map[TemplateType]string
}

// NewSchemaRegistryWith builds a registry from explicit schema definitions.
// uniqueFields maps a template type to the field keys whose values must be
// distinct across one document; categories may be nil.
func NewSchemaRegistryWith(
	sections map[TemplateType][]TemplateSection,
	uniqueFields map[TemplateType][]string,
	categories map[TemplateType]string,
) *SchemaRegistry {
	if uniqueFields == nil {
		uniqueFields = map[TemplateType][]string{}
	}
	if categories == nil {
		categories = map[TemplateType]string{}
	}
	return &SchemaRegistry{
		sections: sections,
		unique:   uniqueFields,
		category: categories,
	}
}

// SectionsFor returns the ordered sections registered for a template type.
func (r *SchemaRegistry) SectionsFor(t TemplateType) ([]TemplateSection, error) {
	sections, ok := r.sections[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplateType, t)
	}
	return sections, nil
}

// FieldsFor returns the flattened, order-preserving concatenation of the
// type's sections' fields. Flattened order is the canonical column order.
func (r *SchemaRegistry) FieldsFor(t TemplateType) ([]TemplateField, error) {
	sections, err := r.SectionsFor(t)
	if err != nil {
		return nil, err
	}
	var fields []TemplateField
	for _, s := range sections {
		fields = append(fields, s.Fields...)
	}
	return fields, nil
}

// UniqueFieldsFor returns the field keys whose values must be distinct
// across all records of one document. Empty for types without uniqueness
// invariants.
func (r *SchemaRegistry) UniqueFieldsFor(t TemplateType) []string {
	return r.unique[t]
}

// CategoryFor returns the human category tag embedded in the template's
// metadata row.
func (r *SchemaRegistry) CategoryFor(t TemplateType) string {
	if c, ok := r.category[t]; ok {
		return c
	}
	return "general"
}

// Types returns all registered template types in stable (lexicographic) order.
func (r *SchemaRegistry) Types() []TemplateType {
	types := make([]TemplateType, 0, len(r.sections))
	for t := range r.sections {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Has reports whether a template type is registered.
func (r *SchemaRegistry) Has(t TemplateType) bool {
	_, ok := r.sections[t]
	return ok
}

// TypeLabel returns a display name for a template type, e.g.
// "marketplace_listings" -> "Marketplace Listings".
func TypeLabel(t TemplateType) string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// NormalizeKey derives a machine key from a display label: lower-cased, with
// whitespace runs replaced by underscores. The field name row of an uploaded
// document is mapped back to keys with this same rule.
func NormalizeKey(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(label))), "_")
}
