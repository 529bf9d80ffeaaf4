package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoadRecords(t *testing.T) {
	path := writeTempCSV(t,
		"Datum;Tag;Tätigkeitsbeschreibung;Beschreibung\n"+
			"01.04.2024;Montag;NE-Nicht-Prämienwirksame Ausbildung;Ticketsystem eingerichtet\n"+
			"02.04.2024;Dienstag;AS-Krankheit;\n")

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "01.04.2024" || records[0].Day != "Montag" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[0].Content != "Ticketsystem eingerichtet" {
		t.Fatalf("unexpected content: %q", records[0].Content)
	}
	if records[1].Content != "" {
		t.Fatalf("expected empty content default, got %q", records[1].Content)
	}
}

func TestLoadRecordsQuotedMultilineContent(t *testing.T) {
	path := writeTempCSV(t,
		"Datum;Tag;Tätigkeitsbeschreibung;Beschreibung\n"+
			"01.04.2024;Montag;NE-Nicht-Prämienwirksame Ausbildung;\"erste Zeile\nzweite Zeile\"\n")

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if records[0].Content != "erste Zeile\nzweite Zeile" {
		t.Fatalf("unexpected multiline content: %q", records[0].Content)
	}
}

func TestLoadRecordsOptionalContentColumn(t *testing.T) {
	path := writeTempCSV(t,
		"Datum;Tag;Tätigkeitsbeschreibung\n"+
			"01.04.2024;Montag;AS-Krankheit\n")

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if records[0].Content != "" {
		t.Fatalf("expected empty content without Beschreibung column, got %q", records[0].Content)
	}
}

func TestLoadRecordsStripsBOM(t *testing.T) {
	path := writeTempCSV(t,
		"\uFEFFDatum;Tag;Tätigkeitsbeschreibung\n"+
			"01.04.2024;Montag;AS-Krankheit\n")

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if records[0].Date != "01.04.2024" {
		t.Fatalf("BOM not stripped from header: %+v", records[0])
	}
}

func TestLoadRecordsMissingColumns(t *testing.T) {
	path := writeTempCSV(t,
		"Datum;Beschreibung\n"+
			"01.04.2024;foo\n")

	if _, err := LoadRecords(path); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

func TestLoadRecordsEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")
	if _, err := LoadRecords(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoadRecordsHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "Datum;Tag;Tätigkeitsbeschreibung;Beschreibung\n")
	if _, err := LoadRecords(path); err == nil {
		t.Fatal("expected error for csv without data rows")
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	if _, err := LoadRecords(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
