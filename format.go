package main

import (
	"fmt"
	"strings"
)

// schoolMarker in the raw content marks a vocational-school day; it
// overrides whatever type the classifier produced.
const (
	schoolMarker = "Berufsschule"
	bulletPrefix = "-   "
)

// Per-day placeholder fields.
const (
	fieldContent = "INHALT"
	fieldHours   = "STUNDEN"
	fieldType    = "ART"
)

// resolveType returns the activity type for an entry, forcing the school
// override when the raw content mentions the marker.
func resolveType(rawContent, classified string) string {
	if strings.Contains(rawContent, schoolMarker) {
		return schoolMarker
	}
	return classified
}

// formatContent renders raw free-text content for the document: the
// school marker is stripped, the remainder trimmed; non-empty content
// has commas and "- " prefixes removed and every line is rendered as a
// bulleted line. Empty content stays empty, no bullet is emitted.
func formatContent(content string) string {
	content = strings.TrimSpace(strings.ReplaceAll(content, schoolMarker, ""))
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, ",", "")
	content = strings.ReplaceAll(content, "- ", "")
	content = strings.ReplaceAll(content, "\n", "\n"+bulletPrefix)
	return bulletPrefix + content
}

// dayPlaceholder derives the literal substitution key for one day field,
// e.g. {MONTAG_INHALT3}. Keys are deterministic in (day, field, week)
// and matched verbatim by the document.
func dayPlaceholder(day, field string, week int) string {
	return fmt.Sprintf("{%s_%s%d}", day, field, week)
}

// generalPlaceholders are the run-scoped and week-scoped keys.
func generalPlaceholders(cfg Config, week int, start, end string) map[string]string {
	return map[string]string{
		"{NAME}":                              orNA(cfg.Name),
		"{ABJ}":                               orNA(cfg.Year),
		fmt.Sprintf("{DATUM_START%d}", week): start,
		fmt.Sprintf("{DATUM_ENDE%d}", week):  end,
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
