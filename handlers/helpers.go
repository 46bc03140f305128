package handlers

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"gadgetguard/services"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// maxUploadBytes caps uploaded template files at 10MB.
const maxUploadBytes = 10 << 20

// templateTypeFrom resolves the {type} path segment against the registry.
func templateTypeFrom(e *core.RequestEvent, registry *services.SchemaRegistry) (services.TemplateType, error) {
	t := services.TemplateType(e.Request.PathValue("type"))
	if !registry.Has(t) {
		return "", fmt.Errorf("unknown template type %q", t)
	}
	return t, nil
}

// writeDownload sends bytes as a file attachment.
func writeDownload(e *core.RequestEvent, fileName, contentType string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, fileName))
	_, err := e.Response.Write(data)
	return err
}

// badRequest responds with a JSON error message.
func badRequest(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
