package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gadgetguard/services"
)

// Setup programmatically ensures one collection per registered template type
// plus the import_batches audit collection. Collection fields are derived
// from the schema registry so the storage layer can never drift from the
// upload templates.
func Setup(app *pocketbase.PocketBase, registry *services.SchemaRegistry) {
	for _, templateType := range registry.Types() {
		fields, err := registry.FieldsFor(templateType)
		if err != nil {
			log.Fatalf("Failed to resolve schema for %q: %v", templateType, err)
		}
		ensureCollection(app, string(templateType), func(c *core.Collection) {
			for _, f := range fields {
				c.Fields.Add(collectionField(f))
			}
			c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
			c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		})
	}

	ensureCollection(app, "import_batches", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "template_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "file_name", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "imported_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "failed_rows", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// collectionField maps a template field definition to the matching
// PocketBase field type. Validation happens in the engine before commit, so
// storage stays permissive beyond the required flags the schema carries.
func collectionField(f services.TemplateField) core.Field {
	switch f.Type {
	case services.FieldNumber:
		return &core.NumberField{Name: f.Key, Required: f.Required}
	case services.FieldDate:
		return &core.DateField{Name: f.Key, Required: f.Required}
	case services.FieldEmail:
		return &core.EmailField{Name: f.Key, Required: f.Required}
	case services.FieldURL:
		return &core.URLField{Name: f.Key, Required: f.Required}
	case services.FieldDropdown:
		return &core.SelectField{
			Name:      f.Key,
			Required:  f.Required,
			Values:    f.Options,
			MaxSelect: 1,
		}
	default:
		return &core.TextField{Name: f.Key, Required: f.Required}
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
