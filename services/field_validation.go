package services

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation regex patterns
var (
	datePattern  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{1,14}$`)
)

// phoneSeparators strips the common phone formatting characters before the
// E.164 shape check.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// validateField checks one cell value against one field definition and
// returns the first failure, or nil. Optional fields skip all checks when
// empty; every failure is severity error.
func validateField(f TemplateField, value string, row int, now time.Time) *ValidationError {
	value = strings.TrimSpace(value)

	if value == "" {
		if f.Required {
			return fieldError(f, value, row, "Required field is empty")
		}
		return nil
	}

	switch f.Type {
	case FieldText:
		// MaxLength counts characters, not bytes
		if f.MaxLength > 0 && utf8.RuneCountInString(value) > f.MaxLength {
			return fieldError(f, value, row,
				fmt.Sprintf("Value exceeds maximum length of %d characters", f.MaxLength))
		}
	case FieldNumber:
		// ParseFloat accepts NaN and Inf spellings; neither is a real amount
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return fieldError(f, value, row, "Must be a non-negative number")
		}
	case FieldDate:
		if msg := validateDate(f.Key, value, now); msg != "" {
			return fieldError(f, value, row, msg)
		}
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return fieldError(f, value, row, "Invalid email format")
		}
	case FieldPhone:
		stripped := phoneSeparators.Replace(value)
		if !phonePattern.MatchString(stripped) {
			return fieldError(f, value, row, "Must be a valid phone number (e.g. +14155552671)")
		}
	case FieldURL:
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fieldError(f, value, row, "Must be a valid absolute URL")
		}
	case FieldDropdown:
		if !matchesOption(value, f.Options) {
			return fieldError(f, value, row,
				"Must be one of: "+strings.Join(f.Options, ", "))
		}
	}

	if f.Pattern != nil && !f.Pattern.MatchString(value) {
		return fieldError(f, value, row, "Value does not match the required format")
	}

	// IMEIs are always exactly 15 characters
	if f.Key == "imei" && len(value) != 15 {
		return fieldError(f, value, row, "IMEI must be exactly 15 characters")
	}

	return nil
}

// validateDate checks the strict YYYY-MM-DD shape and calendar validity.
// Date fields other than expiry dates must not lie in the future: purchase
// and incident dates cannot postdate the upload.
func validateDate(key, value string, now time.Time) string {
	if !datePattern.MatchString(value) {
		return "Must be a valid date in YYYY-MM-DD format"
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return "Must be a valid calendar date"
	}
	if strings.Contains(key, "date") && !strings.Contains(key, "expiry") && d.After(now) {
		return "Date cannot be in the future"
	}
	return ""
}

func matchesOption(value string, options []string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}

// canonicalOption returns the registered casing of a dropdown value, or the
// value unchanged when it matches no option.
func canonicalOption(value string, options []string) string {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return opt
		}
	}
	return value
}

func fieldError(f TemplateField, value string, row int, msg string) *ValidationError {
	return &ValidationError{
		Row:      row,
		Column:   f.Key,
		Field:    f.Label,
		Value:    value,
		Message:  msg,
		Severity: SeverityError,
	}
}
