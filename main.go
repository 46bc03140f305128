package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gadgetguard/collections"
	"gadgetguard/handlers"
	"gadgetguard/services"
)

func main() {
	app := pocketbase.New()
	registry := services.NewSchemaRegistry()

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app, registry)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Bulk import ──────────────────────────────────────────
		se.Router.GET("/imports/{type}/template",
			handlers.HandleTemplateDownload(app, registry))
		se.Router.POST("/imports/{type}/validate",
			handlers.HandleImportValidate(app, registry))
		se.Router.POST("/imports/{type}/commit",
			handlers.HandleImportCommit(app, registry))

		// ── Report downloads ─────────────────────────────────────
		se.Router.POST("/imports/{type}/errors",
			handlers.HandleErrorReport(app, registry))
		se.Router.POST("/imports/{type}/report",
			handlers.HandleValidationReport(app, registry))
		se.Router.POST("/imports/{type}/report/pdf",
			handlers.HandleValidationReportPDF(app, registry))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
