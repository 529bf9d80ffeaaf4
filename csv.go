package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Input CSV columns. Beschreibung is optional and defaults to "".
const (
	colDate     = "Datum"
	colDay      = "Tag"
	colActivity = "Tätigkeitsbeschreibung"
	colContent  = "Beschreibung"
)

// LoadRecords reads the ';'-delimited activity CSV. A missing file, an
// empty file or missing required columns are fatal input errors and
// terminate the run.
func LoadRecords(path string) ([]ActivityRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input csv %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Excel exports often carry a BOM on the first column name.
		index[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	var missing []string
	for _, name := range []string{colDate, colDay, colActivity} {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("input csv %s is missing columns: %s", path, strings.Join(missing, ", "))
	}
	contentIdx, hasContent := index[colContent]

	var records []ActivityRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rec := ActivityRecord{
			Date:     field(row, index[colDate]),
			Day:      field(row, index[colDay]),
			Activity: field(row, index[colActivity]),
		}
		if hasContent {
			rec.Content = field(row, contentIdx)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input csv %s has no data rows", path)
	}
	log.Printf("Loaded %d records from %s", len(records), path)
	return records, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
