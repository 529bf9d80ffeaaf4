package main

import "log"

// ActivityRecord is one row of the input CSV. Records are the source of
// truth and are never mutated after ingestion.
type ActivityRecord struct {
	Date     string // dd.mm.yyyy
	Day      string // weekday name, e.g. "Montag"
	Activity string // raw activity description
	Content  string // free-text description, optional
}

// DayEntry holds the classified values substituted for one day.
type DayEntry struct {
	Day     string // upper-cased day name
	Type    string // classified activity type
	Content string // raw content, formatted at substitution time
}

// WeeksData maps the 1-based relative week index to its day entries.
// Built once at processor construction, read-only afterwards.
type WeeksData map[int][]DayEntry

// EventLog receives the non-fatal events of a processing run.
type EventLog interface {
	// MissingDay reports a weekday absent from the input that was filled
	// with an empty entry.
	MissingDay(day string, week int)
	// InvalidDate reports a record whose date could not be used. The
	// record is skipped.
	InvalidDate(date string, err error)
}

// Cell is a single substitution target in the output document.
// Replacement is literal and case-sensitive; occurrence semantics belong
// to the document implementation.
type Cell interface {
	Replace(placeholder, value string)
	ReplaceAll(placeholders map[string]string)
}

// TemplateDocument is the narrow surface the week processor drives. The
// processor never sees document internals beyond cell iteration and the
// two replacement primitives.
type TemplateDocument interface {
	Cells() []Cell
}

// runEvents is the production EventLog. It writes through the standard
// logger and counts events for the run record.
type runEvents struct {
	Warnings int
	Errors   int
}

func (e *runEvents) MissingDay(day string, week int) {
	e.Warnings++
	log.Printf("Day %s in week %d not present in input, filled with an empty entry. Please check manually!", day, week)
}

func (e *runEvents) InvalidDate(date string, err error) {
	e.Errors++
	log.Printf("Error parsing date '%s': %v (record skipped)", date, err)
}
