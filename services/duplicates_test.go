package services

import (
	"strings"
	"testing"
)

func dupRecord(row int, values map[string]string) Record {
	return Record{Row: row, Values: values}
}

func TestDetectDuplicates(t *testing.T) {
	labels := map[string]string{"serial_number": "Serial Number", "imei": "IMEI"}

	t.Run("no duplicates yields no findings", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": "SN-1"}),
			dupRecord(7, map[string]string{"serial_number": "SN-2"}),
		}
		findings := detectDuplicates(records, []string{"serial_number"}, labels)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("second occurrence cites the first row", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": "SN-1"}),
			dupRecord(7, map[string]string{"serial_number": "SN-1"}),
		}
		findings := detectDuplicates(records, []string{"serial_number"}, labels)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
		f := findings[0]
		if f.Row != 7 || f.Column != "serial_number" || f.Field != "Serial Number" {
			t.Errorf("unexpected finding: %+v", f)
		}
		if f.Message != "Duplicate value found (also in row(s) 6)" {
			t.Errorf("message = %q", f.Message)
		}
	})

	t.Run("third occurrence cites both prior rows", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": "SN-1"}),
			dupRecord(7, map[string]string{"serial_number": "SN-1"}),
			dupRecord(8, map[string]string{"serial_number": "SN-1"}),
		}
		findings := detectDuplicates(records, []string{"serial_number"}, labels)
		if len(findings) != 2 {
			t.Fatalf("findings = %d, want 2", len(findings))
		}
		if findings[0].Row != 7 || !strings.HasSuffix(findings[0].Message, "row(s) 6)") {
			t.Errorf("unexpected second occurrence: %+v", findings[0])
		}
		if findings[1].Row != 8 || !strings.HasSuffix(findings[1].Message, "row(s) 6, 7)") {
			t.Errorf("unexpected third occurrence: %+v", findings[1])
		}
	})

	t.Run("surrounding whitespace does not hide a duplicate", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": "SN-1"}),
			dupRecord(7, map[string]string{"serial_number": " SN-1 "}),
		}
		findings := detectDuplicates(records, []string{"serial_number"}, labels)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
		if findings[0].Row != 7 {
			t.Errorf("row = %d, want 7", findings[0].Row)
		}
	})

	t.Run("whitespace-only cells never collide", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": "  "}),
			dupRecord(7, map[string]string{"serial_number": " "}),
		}
		findings := detectDuplicates(records, []string{"serial_number"}, labels)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("empty cells never collide", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": ""}),
			dupRecord(7, map[string]string{"serial_number": ""}),
		}
		findings := detectDuplicates(records, []string{"serial_number"}, labels)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("unique fields are tracked independently", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"serial_number": "SN-1", "imei": "356938035643809"}),
			dupRecord(7, map[string]string{"serial_number": "SN-2", "imei": "356938035643809"}),
		}
		findings := detectDuplicates(records, []string{"serial_number", "imei"}, labels)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
		if findings[0].Column != "imei" {
			t.Errorf("column = %q, want imei", findings[0].Column)
		}
	})

	t.Run("missing label falls back to the key", func(t *testing.T) {
		records := []Record{
			dupRecord(6, map[string]string{"policy_number": "PL-123456"}),
			dupRecord(7, map[string]string{"policy_number": "PL-123456"}),
		}
		findings := detectDuplicates(records, []string{"policy_number"}, nil)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
		if findings[0].Field != "policy_number" {
			t.Errorf("field = %q", findings[0].Field)
		}
	})
}
