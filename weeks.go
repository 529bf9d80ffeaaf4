package main

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// dateLayout is the fixed input and output date format (dd.mm.yyyy).
const dateLayout = "02.01.2006"

func parseRecordDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(dateStr))
}

// classifyActivity maps an activity description onto its configured type
// label. The description is matched upper-cased; unknown descriptions
// fall back to the "NA" entry and finally to the configured unknown
// literal, so the result is never a raw unmapped description.
func classifyActivity(cfg Config, activity string) string {
	key := strings.ToUpper(strings.TrimSpace(activity))
	if label, ok := cfg.Activities[key]; ok {
		return label
	}
	if label, ok := cfg.Activities["NA"]; ok {
		return label
	}
	return cfg.UnknownType
}

// buildWeeksData buckets records by relative week, anchored to the first
// record's ISO week (relative week = ISO week - anchor week + 1). A
// record with an unparsable date, or a date outside the anchor's ISO
// year, is reported and skipped; one run covers a single ISO year.
// Records sharing a (week, day) slot are kept side by side and resolved
// first-match at substitution time.
func buildWeeksData(cfg Config, records []ActivityRecord, events EventLog) (WeeksData, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no activity records to process")
	}
	anchor, err := parseRecordDate(records[0].Date)
	if err != nil {
		return nil, fmt.Errorf("first record has invalid date %q: %w", records[0].Date, err)
	}
	anchorYear, anchorWeek := anchor.ISOWeek()

	weeks := make(WeeksData)
	for _, rec := range records {
		date, err := parseRecordDate(rec.Date)
		if err != nil {
			events.InvalidDate(rec.Date, err)
			continue
		}
		year, week := date.ISOWeek()
		if year != anchorYear {
			events.InvalidDate(rec.Date, fmt.Errorf("ISO year %d outside report year %d", year, anchorYear))
			continue
		}
		relative := week - anchorWeek + 1
		weeks[relative] = append(weeks[relative], DayEntry{
			Day:     strings.ToUpper(strings.TrimSpace(rec.Day)),
			Type:    classifyActivity(cfg, rec.Activity),
			Content: rec.Content,
		})
	}
	return weeks, nil
}

// fillMissingDays completes every week bucket to the configured day set,
// appending an empty entry per absent day. Running it again on a
// complete bucket is a no-op.
func fillMissingDays(cfg Config, weeks WeeksData, events EventLog) {
	for _, week := range sortedWeeks(weeks) {
		present := make(map[string]bool, len(weeks[week]))
		for _, entry := range weeks[week] {
			present[entry.Day] = true
		}
		for _, day := range cfg.Days {
			if present[day] {
				continue
			}
			weeks[week] = append(weeks[week], DayEntry{Day: day})
			events.MissingDay(day, week)
		}
	}
}

func sortedWeeks(weeks WeeksData) []int {
	out := make([]int, 0, len(weeks))
	for week := range weeks {
		out = append(out, week)
	}
	sort.Ints(out)
	return out
}

// weekRange returns the start and end date of a report week as
// dd.mm.yyyy strings. offset is zero-based from the anchor date; the
// window is the hardcoded Monday-Friday span, start plus four days.
func weekRange(anchor time.Time, offset int) (string, string) {
	start := anchor.AddDate(0, 0, 7*offset)
	end := start.AddDate(0, 0, 4)
	return start.Format(dateLayout), end.Format(dateLayout)
}
