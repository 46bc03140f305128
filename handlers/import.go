package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gadgetguard/services"
)

// validateResponse is what the validate endpoint returns: the aggregate
// result plus the parsed records, which the client posts back on commit.
type validateResponse struct {
	Result  *services.ValidationResult `json:"result"`
	IsValid bool                       `json:"is_valid"`
	Records []services.Record          `json:"records"`
}

// commitRequest carries previously validated records back for insertion.
type commitRequest struct {
	FileName string            `json:"file_name"`
	Records  []services.Record `json:"records"`
}

// reportRequest carries a validation result back for report rendering.
type reportRequest struct {
	Result services.ValidationResult `json:"result"`
}

// HandleImportValidate receives a template file upload, parses it and runs
// the validation pipeline.
// Route: POST /imports/{type}/validate (multipart field "file")
func HandleImportValidate(app *pocketbase.PocketBase, registry *services.SchemaRegistry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateType, err := templateTypeFrom(e, registry)
		if err != nil {
			return badRequest(e, err.Error())
		}

		if err := e.Request.ParseMultipartForm(maxUploadBytes); err != nil {
			return badRequest(e, "File too large or invalid form data")
		}
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return badRequest(e, "Please select a file to upload")
		}
		defer file.Close()

		rows, err := services.ParseUpload(header.Filename, file)
		if err != nil {
			log.Printf("import_validate: %v", err)
			return badRequest(e, err.Error())
		}
		records := services.ParseRecords(rows)

		result, err := services.NewValidator(registry).Validate(templateType, records)
		if err != nil {
			return badRequest(e, err.Error())
		}

		// only rows with zero error-severity findings are offered for commit
		return e.JSON(http.StatusOK, validateResponse{
			Result:  result,
			IsValid: result.IsValid(),
			Records: result.ValidatedData,
		})
	}
}

// HandleImportCommit inserts previously validated records and records the
// batch in the import_batches audit collection.
// Route: POST /imports/{type}/commit
func HandleImportCommit(app *pocketbase.PocketBase, registry *services.SchemaRegistry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateType, err := templateTypeFrom(e, registry)
		if err != nil {
			return badRequest(e, err.Error())
		}

		var req commitRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return badRequest(e, "Invalid commit payload")
		}
		if len(req.Records) == 0 {
			return badRequest(e, "No records to import")
		}

		result, err := services.CommitImport(app, registry, templateType, req.Records)
		if err != nil {
			log.Printf("import_commit: %v", err)
			return e.String(http.StatusInternalServerError, "Import failed")
		}

		recordImportBatch(app, templateType, req.FileName, result)

		return e.JSON(http.StatusOK, result)
	}
}

// HandleErrorReport downloads validation findings as an Excel file.
// Route: POST /imports/{type}/errors
func HandleErrorReport(app *pocketbase.PocketBase, registry *services.SchemaRegistry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateType, err := templateTypeFrom(e, registry)
		if err != nil {
			return badRequest(e, err.Error())
		}

		var req reportRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return badRequest(e, "Invalid report payload")
		}

		data, err := services.GenerateErrorReport(req.Result.Errors, req.Result.Warnings)
		if err != nil {
			log.Printf("error_report: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate error report")
		}

		fileName := string(templateType) + "_errors_" + time.Now().Format("2006-01-02") + ".xlsx"
		return writeDownload(e, fileName, contentTypeXLSX, data)
	}
}

// HandleValidationReport downloads the validation report as CSV.
// Route: POST /imports/{type}/report
func HandleValidationReport(app *pocketbase.PocketBase, registry *services.SchemaRegistry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateType, err := templateTypeFrom(e, registry)
		if err != nil {
			return badRequest(e, err.Error())
		}

		var req reportRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return badRequest(e, "Invalid report payload")
		}
		req.Result.TemplateType = templateType

		data := services.GenerateValidationReport(&req.Result)
		fileName := string(templateType) + "_validation_report_" + time.Now().Format("2006-01-02") + ".csv"
		return writeDownload(e, fileName, contentTypeCSV, data)
	}
}

// HandleValidationReportPDF downloads the validation report as PDF.
// Route: POST /imports/{type}/report/pdf
func HandleValidationReportPDF(app *pocketbase.PocketBase, registry *services.SchemaRegistry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateType, err := templateTypeFrom(e, registry)
		if err != nil {
			return badRequest(e, err.Error())
		}

		var req reportRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return badRequest(e, "Invalid report payload")
		}
		req.Result.TemplateType = templateType

		data, err := services.GenerateValidationReportPDF(&req.Result, time.Now())
		if err != nil {
			log.Printf("report_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF report")
		}

		fileName := string(templateType) + "_validation_report_" + time.Now().Format("2006-01-02") + ".pdf"
		return writeDownload(e, fileName, contentTypePDF, data)
	}
}

// recordImportBatch stores an audit row for a commit. Failures are logged
// and never fail the import.
func recordImportBatch(app *pocketbase.PocketBase, templateType services.TemplateType, fileName string, result *services.ImportResult) {
	col, err := app.FindCollectionByNameOrId("import_batches")
	if err != nil {
		log.Printf("import_commit: import_batches collection missing: %v", err)
		return
	}

	record := core.NewRecord(col)
	record.Set("template_type", string(templateType))
	record.Set("file_name", fileName)
	record.Set("total_rows", result.TotalRows)
	record.Set("imported_rows", result.Imported)
	record.Set("failed_rows", result.Failed)

	if err := app.Save(record); err != nil {
		log.Printf("import_commit: failed to record batch: %v", err)
	}
}
