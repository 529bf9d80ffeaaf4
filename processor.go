package main

import "time"

// WeekProcessor organizes the ingested records into week buckets and
// fills the document template week by week.
type WeekProcessor struct {
	cfg    Config
	events EventLog
	doc    TemplateDocument
	weeks  WeeksData
	anchor time.Time
}

// NewWeekProcessor ingests the records once: buckets them by relative
// week and completes every bucket to the configured day set. The
// resulting weeks data is read-only afterwards; only the document is
// mutated during processing.
func NewWeekProcessor(cfg Config, events EventLog, doc TemplateDocument, records []ActivityRecord) (*WeekProcessor, error) {
	weeks, err := buildWeeksData(cfg, records, events)
	if err != nil {
		return nil, err
	}
	fillMissingDays(cfg, weeks, events)
	// Anchor already validated by buildWeeksData.
	anchor, _ := parseRecordDate(records[0].Date)
	return &WeekProcessor{cfg: cfg, events: events, doc: doc, weeks: weeks, anchor: anchor}, nil
}

// Weeks exposes the bucketed data for run reporting.
func (p *WeekProcessor) Weeks() WeeksData { return p.weeks }

// ProcessAllWeeks substitutes placeholders for every week in increasing
// relative-week order. All weeks write into the same document, so the
// order matters when template tables are reused.
func (p *WeekProcessor) ProcessAllWeeks() {
	for _, week := range sortedWeeks(p.weeks) {
		p.processWeek(week, p.weeks[week])
	}
}

func (p *WeekProcessor) processWeek(week int, entries []DayEntry) {
	start, end := weekRange(p.anchor, week-1)
	general := generalPlaceholders(p.cfg, week, start, end)

	for _, cell := range p.doc.Cells() {
		cell.ReplaceAll(general)
		for _, day := range p.cfg.Days {
			p.substituteDay(cell, day, week, entryForDay(entries, day))
		}
	}
}

// substituteDay replaces the three per-day placeholders in one cell.
// Hours are substituted unconditionally with the configured default,
// filled-in empty days included.
func (p *WeekProcessor) substituteDay(cell Cell, day string, week int, entry DayEntry) {
	cell.Replace(dayPlaceholder(day, fieldContent, week), formatContent(entry.Content))
	cell.Replace(dayPlaceholder(day, fieldHours, week), p.cfg.DefaultHours)
	cell.Replace(dayPlaceholder(day, fieldType, week), resolveType(entry.Content, entry.Type))
}

// entryForDay returns the first entry recorded for the day. Duplicate
// (week, day) input is not merged, so the first record wins; an absent
// day yields an empty entry.
func entryForDay(entries []DayEntry, day string) DayEntry {
	for _, entry := range entries {
		if entry.Day == day {
			return entry
		}
	}
	return DayEntry{Day: day}
}
