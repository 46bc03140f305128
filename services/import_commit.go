package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const importBatchSize = 100

// ImportResult holds the outcome of a batch import operation.
type ImportResult struct {
	TotalRows  int               `json:"total_rows"`
	Imported   int               `json:"imported"`
	Failed     int               `json:"failed"`
	Errors     []ValidationError `json:"errors,omitempty"`
	RolledBack bool              `json:"rolled_back"`
}

// CommitImport re-validates and batch-inserts validated records into the
// template type's collection. Records are processed in chunks of
// importBatchSize; if any insert inside a chunk fails, that whole chunk is
// rolled back and processing continues with the next chunk.
//
// The re-validation guards against stale payloads: clients post back rows
// they validated earlier, and the schema may have moved in between.
func CommitImport(
	app *pocketbase.PocketBase,
	registry *SchemaRegistry,
	templateType TemplateType,
	records []Record,
) (*ImportResult, error) {
	validation, err := NewValidator(registry).Validate(templateType, records)
	if err != nil {
		return nil, err
	}
	if !validation.IsValid() {
		return &ImportResult{
			TotalRows:  len(records),
			Failed:     validation.InvalidRows,
			Errors:     validation.Errors,
			RolledBack: true,
		}, nil
	}

	col, err := app.FindCollectionByNameOrId(string(templateType))
	if err != nil {
		return nil, fmt.Errorf("collection %q not found: %w", templateType, err)
	}
	fields, err := registry.FieldsFor(templateType)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{TotalRows: len(records)}

	for chunkStart := 0; chunkStart < len(records); chunkStart += importBatchSize {
		chunkEnd := chunkStart + importBatchSize
		if chunkEnd > len(records) {
			chunkEnd = len(records)
		}
		chunk := records[chunkStart:chunkEnd]

		chunkErrors := insertChunk(app, col, fields, chunk)
		if len(chunkErrors) > 0 {
			result.Errors = append(result.Errors, chunkErrors...)
			result.Failed += len(chunk) // entire chunk rolled back
			result.RolledBack = true
		} else {
			result.Imported += len(chunk)
		}
	}

	return result, nil
}

// insertChunk inserts a batch of records within a RunInTransaction block.
// If any record fails, the entire chunk is rolled back and errors are
// returned.
func insertChunk(
	app *pocketbase.PocketBase,
	col *core.Collection,
	fields []TemplateField,
	records []Record,
) []ValidationError {
	var chunkErrors []ValidationError

	err := app.RunInTransaction(func(txApp core.App) error {
		for _, rec := range records {
			record := core.NewRecord(col)
			for _, f := range fields {
				value := strings.TrimSpace(rec.Values[f.Key])
				if value == "" {
					continue
				}
				switch f.Type {
				case FieldNumber:
					if n, err := strconv.ParseFloat(value, 64); err == nil {
						record.Set(f.Key, n)
						continue
					}
				case FieldDropdown:
					// select fields store the canonical option casing
					value = canonicalOption(value, f.Options)
				}
				record.Set(f.Key, value)
			}

			if err := txApp.Save(record); err != nil {
				chunkErrors = append(chunkErrors, ValidationError{
					Row:      rec.Row,
					Message:  fmt.Sprintf("Failed to save: %s", err.Error()),
					Severity: SeverityError,
				})
				return fmt.Errorf("save failed at row %d: %w", rec.Row, err)
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("import_commit: chunk insert rolled back: %v", err)
		if len(chunkErrors) == 0 {
			chunkErrors = append(chunkErrors, ValidationError{
				Row:      records[0].Row,
				Message:  fmt.Sprintf("Transaction failed: %s", err.Error()),
				Severity: SeverityError,
			})
		}
	}

	return chunkErrors
}
