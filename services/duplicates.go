package services

import (
	"fmt"
	"strconv"
	"strings"
)

// detectDuplicates scans all records in document order and reports repeated
// values for the given unique field keys. The first occurrence of a value is
// clean; every later occurrence is an error listing all prior rows, so a
// third occurrence references both earlier ones. Empty cells never collide.
// Each unique field is tracked independently.
func detectDuplicates(records []Record, uniqueFields []string, keyToLabel map[string]string) []ValidationError {
	var findings []ValidationError

	for _, key := range uniqueFields {
		seen := make(map[string][]int)
		for _, rec := range records {
			// trim so values posted back over JSON collide the same way
			// freshly parsed ones do
			value := strings.TrimSpace(rec.Values[key])
			if value == "" {
				continue
			}
			if prior, ok := seen[value]; ok {
				label := keyToLabel[key]
				if label == "" {
					label = key
				}
				findings = append(findings, ValidationError{
					Row:      rec.Row,
					Column:   key,
					Field:    label,
					Value:    value,
					Message:  fmt.Sprintf("Duplicate value found (also in row(s) %s)", joinRows(prior)),
					Severity: SeverityError,
				})
			}
			seen[value] = append(seen[value], rec.Row)
		}
	}

	return findings
}

func joinRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ", ")
}
