package services

import "testing"

func ruleRecord(values map[string]string) Record {
	return Record{Row: 6, Values: values}
}

func TestBusinessRules_WarrantyOrdering(t *testing.T) {
	t.Run("expiry before purchase is an error", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"purchase_date":   "2024-06-01",
			"warranty_expiry": "2024-01-01",
		}), testNow)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
		f := findings[0]
		if f.Severity != SeverityError {
			t.Errorf("severity = %q, want error", f.Severity)
		}
		if f.Column != "warranty_expiry" || f.Row != 6 {
			t.Errorf("unexpected finding location: %+v", f)
		}
	})

	t.Run("expiry on purchase date is fine", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"purchase_date":   "2024-06-01",
			"warranty_expiry": "2024-06-01",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("padded cells still trigger the rule", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"purchase_date":   " 2024-06-01 ",
			"warranty_expiry": " 2024-01-01",
		}), testNow)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
	})

	t.Run("missing either side skips the rule", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"warranty_expiry": "2020-01-01",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("unparseable purchase date skips the rule", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"purchase_date":   "not-a-date",
			"warranty_expiry": "2020-01-01",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})
}

func TestBusinessRules_StaleIncident(t *testing.T) {
	t.Run("incident older than two years warns", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"incident_date": "2024-08-30",
		}), testNow)
		if len(findings) != 1 {
			t.Fatalf("findings = %d, want 1", len(findings))
		}
		if findings[0].Severity != SeverityWarning {
			t.Errorf("severity = %q, want warning", findings[0].Severity)
		}
	})

	t.Run("recent incident passes", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"incident_date": "2026-08-01",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("exactly two years ago passes", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"incident_date": "2024-08-31",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})
}

func TestBusinessRules_PriceThresholds(t *testing.T) {
	t.Run("very high purchase price warns", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"purchase_price": "150000",
		}), testNow)
		if len(findings) != 1 || findings[0].Severity != SeverityWarning {
			t.Fatalf("findings = %v, want one warning", findings)
		}
		if findings[0].Column != "purchase_price" {
			t.Errorf("column = %q", findings[0].Column)
		}
	})

	t.Run("price at the threshold passes", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"purchase_price": "100000",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("very low listing price warns", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"price": "50",
		}), testNow)
		if len(findings) != 1 || findings[0].Severity != SeverityWarning {
			t.Fatalf("findings = %v, want one warning", findings)
		}
	})

	t.Run("free listing does not warn", func(t *testing.T) {
		findings := validateBusinessRules(ruleRecord(map[string]string{
			"price": "0",
		}), testNow)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})
}

func TestBusinessRules_MultipleFindings(t *testing.T) {
	findings := validateBusinessRules(ruleRecord(map[string]string{
		"purchase_date":   "2024-06-01",
		"warranty_expiry": "2024-01-01",
		"purchase_price":  "200000",
	}), testNow)
	if len(findings) != 2 {
		t.Fatalf("findings = %d, want 2", len(findings))
	}
}
