package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func testDocument(dataLines ...string) string {
	lines := []string{
		`"GadgetGuard bulk upload template, type=devices"`,
		"Device Information,,",
		"Serial Number,Brand,Purchase Price",
		"text required,text,number",
		"ABC123,Apple,999",
	}
	lines = append(lines, dataLines...)
	return strings.Join(lines, "\n") + "\n"
}

func TestParseRecords(t *testing.T) {
	t.Run("maps rows against the field name row", func(t *testing.T) {
		doc := testDocument("SN-1,Apple,1299.99", "SN-2,Samsung,899")
		records := ParseRecords(parseCSVDocument(doc))
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Values["serial_number"] != "SN-1" {
			t.Errorf("serial_number = %q", records[0].Values["serial_number"])
		}
		if records[1].Values["brand"] != "Samsung" {
			t.Errorf("brand = %q", records[1].Values["brand"])
		}
		if records[0].Values["purchase_price"] != "1299.99" {
			t.Errorf("purchase_price = %q", records[0].Values["purchase_price"])
		}
	})

	t.Run("row numbering starts at document row 6", func(t *testing.T) {
		doc := testDocument("SN-1,Apple,1299.99", "SN-2,Samsung,899")
		records := ParseRecords(parseCSVDocument(doc))
		if records[0].Row != 6 || records[1].Row != 7 {
			t.Errorf("rows = %d, %d; want 6, 7", records[0].Row, records[1].Row)
		}
	})

	t.Run("blank rows are dropped but keep numbering", func(t *testing.T) {
		doc := testDocument("SN-1,Apple,1299.99", ",,", "SN-2,Samsung,899")
		records := ParseRecords(parseCSVDocument(doc))
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[1].Row != 8 {
			t.Errorf("second record row = %d, want 8", records[1].Row)
		}
	})

	t.Run("cells are trimmed", func(t *testing.T) {
		doc := testDocument("  SN-1  , Apple ,999")
		records := ParseRecords(parseCSVDocument(doc))
		if records[0].Values["serial_number"] != "SN-1" {
			t.Errorf("serial_number = %q", records[0].Values["serial_number"])
		}
	})

	t.Run("short rows leave missing cells empty", func(t *testing.T) {
		doc := testDocument("SN-1")
		records := ParseRecords(parseCSVDocument(doc))
		if records[0].Values["brand"] != "" {
			t.Errorf("brand = %q, want empty", records[0].Values["brand"])
		}
	})

	t.Run("too-short document yields zero records", func(t *testing.T) {
		doc := "only,one\nrow,here\n"
		if records := ParseRecords(parseCSVDocument(doc)); records != nil {
			t.Errorf("expected nil, got %v", records)
		}
	})

	t.Run("header-only document yields zero records", func(t *testing.T) {
		doc := testDocument()
		if records := ParseRecords(parseCSVDocument(doc)); len(records) != 0 {
			t.Errorf("expected 0 records, got %d", len(records))
		}
	})
}

func TestParseUpload_CSV(t *testing.T) {
	doc := testDocument("SN-1,Apple,1299.99")
	rows, err := ParseUpload("devices.csv", strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseUpload() error: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
}

func TestParseUpload_UnsupportedFormat(t *testing.T) {
	_, err := ParseUpload("devices.pdf", strings.NewReader("data"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "must be .csv or .xlsx") {
		t.Errorf("unexpected error: %v", err)
	}
}

// A generated Excel template filled with one data row must parse back into
// the same record a CSV upload would produce.
func TestParseUpload_Excel(t *testing.T) {
	g := testGenerator()
	data, err := g.Excel(TemplateDevices)
	if err != nil {
		t.Fatalf("Excel() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	f.SetCellValue("Devices", "A6", "SN-42")
	f.SetCellValue("Devices", "D6", "Apple")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write filled template: %v", err)
	}
	f.Close()

	rows, err := ParseUpload("devices.xlsx", &buf)
	if err != nil {
		t.Fatalf("ParseUpload() error: %v", err)
	}

	records := ParseRecords(rows)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Row != 6 {
		t.Errorf("record row = %d, want 6", records[0].Row)
	}
	if records[0].Values["serial_number"] != "SN-42" {
		t.Errorf("serial_number = %q", records[0].Values["serial_number"])
	}
	if records[0].Values["brand"] != "Apple" {
		t.Errorf("brand = %q", records[0].Values["brand"])
	}
}
