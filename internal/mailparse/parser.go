package mailparse

import (
	"strings"

	"email-ticket-analyzer/internal/models"
)

// prefixes maps the line markers recognized by Parse to the field they open
var prefixes = []struct {
	marker string
	field  models.Field
}{
	{"From:", models.FieldSender},
	{"Subject:", models.FieldSubject},
	{"Body:", models.FieldBody},
}

// Parse splits a plain-text dump into records. Records are separated by blank
// lines. Each one is built from From:, Subject: and Body: lines, and any other
// line continues the field opened last. Records are returned in input order
// whether or not they are complete.
func Parse(raw string) []models.EmailRecord {
	var (
		records []models.EmailRecord
		current models.EmailRecord
		field   = models.FieldNone
	)

	flush := func() {
		if !current.IsEmpty() {
			records = append(records, current)
		}
		current = models.EmailRecord{}
		field = models.FieldNone
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		if f, value, ok := splitPrefix(line); ok {
			current.Set(f, value)
			field = f
			continue
		}

		// Continuation before any field was opened is dropped
		if field != models.FieldNone {
			current.Append(field, line)
		}
	}
	flush()

	return records
}

// splitPrefix returns the field introduced by line and the trimmed remainder
func splitPrefix(line string) (models.Field, string, bool) {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(line, p.marker); ok {
			return p.field, strings.TrimSpace(rest), true
		}
	}
	return models.FieldNone, "", false
}
