// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"

	"gadgetguard/collections"
	"gadgetguard/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup with the built-in schema
// registry. The temporary directory is cleaned up automatically when the
// test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app, services.NewSchemaRegistry())

	return app
}

// CountRecords returns the number of records in a collection.
func CountRecords(t *testing.T, app *pocketbase.PocketBase, collection string) int {
	t.Helper()

	records, err := app.FindAllRecords(collection)
	if err != nil {
		t.Fatalf("failed to list %q records: %v", collection, err)
	}
	return len(records)
}
