package services

import (
	"strconv"
	"strings"
	"time"
)

// Cross-field thresholds. Prices are in major currency units.
const (
	highPurchasePrice = 100000.0
	lowListingPrice   = 100.0
	staleIncidentAge  = 2 // years
)

// validateBusinessRules evaluates cross-field invariants on a single record
// after field-level validation. All rules are permissive warnings except the
// warranty ordering rule, which is a hard error. Cells that fail to parse
// are skipped here; field validation already reported them.
func validateBusinessRules(rec Record, now time.Time) []ValidationError {
	var findings []ValidationError

	purchase, hasPurchase := parseRuleDate(rec.Values["purchase_date"])
	expiry, hasExpiry := parseRuleDate(rec.Values["warranty_expiry"])
	if hasPurchase && hasExpiry && expiry.Before(purchase) {
		findings = append(findings, ValidationError{
			Row:      rec.Row,
			Column:   "warranty_expiry",
			Field:    "Warranty Expiry",
			Value:    rec.Values["warranty_expiry"],
			Message:  "Warranty expiry cannot be earlier than the purchase date",
			Severity: SeverityError,
		})
	}

	if incident, ok := parseRuleDate(rec.Values["incident_date"]); ok {
		if incident.Before(now.AddDate(-staleIncidentAge, 0, 0)) {
			findings = append(findings, ValidationError{
				Row:      rec.Row,
				Column:   "incident_date",
				Field:    "Incident Date",
				Value:    rec.Values["incident_date"],
				Message:  "Incident is more than 2 years old; recovery chances may be reduced",
				Severity: SeverityWarning,
			})
		}
	}

	if price, ok := parseRuleNumber(rec.Values["purchase_price"]); ok && price > highPurchasePrice {
		findings = append(findings, ValidationError{
			Row:      rec.Row,
			Column:   "purchase_price",
			Field:    "Purchase Price",
			Value:    rec.Values["purchase_price"],
			Message:  "Purchase price is unusually high; please verify",
			Severity: SeverityWarning,
		})
	}

	if price, ok := parseRuleNumber(rec.Values["price"]); ok && price > 0 && price < lowListingPrice {
		findings = append(findings, ValidationError{
			Row:      rec.Row,
			Column:   "price",
			Field:    "Price",
			Value:    rec.Values["price"],
			Message:  "Price is unusually low for a listing; please verify",
			Severity: SeverityWarning,
		})
	}

	return findings
}

func parseRuleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func parseRuleNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
