package services

import (
	"sort"
	"time"
)

// Severity classifies a finding. Errors block a row from the validated data
// set; warnings are informational and never block.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is a single finding on one cell or one record.
type ValidationError struct {
	Row      int      `json:"row"`      // 1-based document row number
	Column   string   `json:"column"`   // field machine key
	Field    string   `json:"field"`    // field display name
	Value    string   `json:"value"`    // original cell value
	Message  string   `json:"error"`    // human-readable message
	Severity Severity `json:"severity"` // error or warning
}

// ValidationResult is the aggregate outcome of validating one upload.
type ValidationResult struct {
	TemplateType  TemplateType      `json:"template_type"`
	TotalRows     int               `json:"total_rows"`
	ValidRows     int               `json:"valid_rows"`
	InvalidRows   int               `json:"invalid_rows"`
	Errors        []ValidationError `json:"errors"`
	Warnings      []ValidationError `json:"warnings"`
	ValidatedData []Record          `json:"-"`
}

// IsValid reports whether the upload produced no error-severity findings.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validator runs the full validation pipeline for uploaded records. The
// clock is injectable so date rules are deterministic under test.
type Validator struct {
	registry *SchemaRegistry
	now      func() time.Time
}

// NewValidator returns a validator backed by the given registry.
func NewValidator(registry *SchemaRegistry) *Validator {
	return &Validator{registry: registry, now: time.Now}
}

// Validate runs field, business rule and duplicate checks over all records
// of one document in order. It never fails fast on row findings: every
// record is evaluated and every finding collected. Only an unknown template
// type aborts the call.
//
// Rows with any error-severity finding, including duplicates, are excluded
// from ValidatedData and counted invalid.
func (v *Validator) Validate(t TemplateType, records []Record) (*ValidationResult, error) {
	fields, err := v.registry.FieldsFor(t)
	if err != nil {
		return nil, err
	}
	now := v.now()

	result := &ValidationResult{
		TemplateType: t,
		TotalRows:    len(records),
	}

	for _, rec := range records {
		for _, f := range fields {
			if e := validateField(f, rec.Values[f.Key], rec.Row, now); e != nil {
				result.Errors = append(result.Errors, *e)
			}
		}
		for _, e := range validateBusinessRules(rec, now) {
			if e.Severity == SeverityWarning {
				result.Warnings = append(result.Warnings, e)
			} else {
				result.Errors = append(result.Errors, e)
			}
		}
	}

	keyToLabel := make(map[string]string, len(fields))
	for _, f := range fields {
		keyToLabel[f.Key] = f.Label
	}
	result.Errors = append(result.Errors,
		detectDuplicates(records, v.registry.UniqueFieldsFor(t), keyToLabel)...)

	sortFindings(result.Errors)
	sortFindings(result.Warnings)

	errorRows := make(map[int]bool)
	for _, e := range result.Errors {
		errorRows[e.Row] = true
	}
	for _, rec := range records {
		if !errorRows[rec.Row] {
			result.ValidatedData = append(result.ValidatedData, rec)
		}
	}
	result.InvalidRows = len(errorRows)
	result.ValidRows = result.TotalRows - result.InvalidRows

	return result, nil
}

// sortFindings orders findings by row then column so reports stay
// deterministic and diffable.
func sortFindings(findings []ValidationError) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Row != findings[j].Row {
			return findings[i].Row < findings[j].Row
		}
		return findings[i].Column < findings[j].Column
	})
}
