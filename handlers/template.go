package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gadgetguard/services"
)

// HandleTemplateDownload serves a blank upload template for a template type.
// Route: GET /imports/{type}/template?format=csv|xlsx (default csv)
func HandleTemplateDownload(app *pocketbase.PocketBase, registry *services.SchemaRegistry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateType, err := templateTypeFrom(e, registry)
		if err != nil {
			return badRequest(e, err.Error())
		}

		generator := services.NewTemplateGenerator(registry)
		format := e.Request.URL.Query().Get("format")
		if format == "" {
			format = "csv"
		}

		var data []byte
		var contentType string
		switch format {
		case "csv":
			data, err = generator.CSV(templateType)
			contentType = contentTypeCSV
		case "xlsx":
			data, err = generator.Excel(templateType)
			contentType = contentTypeXLSX
		default:
			return badRequest(e, "format must be csv or xlsx")
		}
		if err != nil {
			log.Printf("template: failed to generate %s for %s: %v", format, templateType, err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		return writeDownload(e, generator.FileName(templateType, format), contentType, data)
	}
}
