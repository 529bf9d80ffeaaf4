package main

import "testing"

func TestFormatContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"commas stripped and lines bulleted", "foo,bar\nbaz", "-   foobar\n-   baz"},
		{"leading dash prefixes stripped", "- erste Zeile\n- zweite Zeile", "-   erste Zeile\n-   zweite Zeile"},
		{"single line", "Dokumentation geschrieben", "-   Dokumentation geschrieben"},
		{"marker only becomes empty", "Berufsschule", ""},
		{"marker stripped from content", "Berufsschule\nBerichtsheft", "-   Berichtsheft"},
		{"whitespace only", "   \n\t", ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := formatContent(tc.content); got != tc.want {
				t.Fatalf("formatContent(%q) = %q, want %q", tc.content, got, tc.want)
			}
		})
	}
}

func TestResolveTypeSchoolOverride(t *testing.T) {
	if got := resolveType("Berufsschule Mathe", "Betrieb"); got != "Berufsschule" {
		t.Fatalf("expected school override, got %q", got)
	}
	if got := resolveType("normaler Arbeitstag", "Betrieb"); got != "Betrieb" {
		t.Fatalf("expected classifier result, got %q", got)
	}
	// The override also supersedes the unknown fallback.
	if got := resolveType("Berufsschule", "TAETIGKEIT_UNBEKANNT"); got != "Berufsschule" {
		t.Fatalf("expected school override over fallback, got %q", got)
	}
}

func TestDayPlaceholderKeys(t *testing.T) {
	if got := dayPlaceholder("MONTAG", fieldContent, 3); got != "{MONTAG_INHALT3}" {
		t.Fatalf("unexpected content key: %q", got)
	}
	if got := dayPlaceholder("FREITAG", fieldHours, 1); got != "{FREITAG_STUNDEN1}" {
		t.Fatalf("unexpected hours key: %q", got)
	}
	if got := dayPlaceholder("MITTWOCH", fieldType, 12); got != "{MITTWOCH_ART12}" {
		t.Fatalf("unexpected type key: %q", got)
	}

	// Keys are deterministic and unique per (day, field, week).
	first := dayPlaceholder("MONTAG", fieldContent, 3)
	second := dayPlaceholder("MONTAG", fieldContent, 3)
	if first != second {
		t.Fatalf("key generation not stable: %q vs %q", first, second)
	}
	if dayPlaceholder("MONTAG", fieldContent, 3) == dayPlaceholder("MONTAG", fieldContent, 4) {
		t.Fatal("keys for different weeks must differ")
	}
	if dayPlaceholder("MONTAG", fieldContent, 3) == dayPlaceholder("DIENSTAG", fieldContent, 3) {
		t.Fatal("keys for different days must differ")
	}
}

func TestGeneralPlaceholders(t *testing.T) {
	cfg := testConfig()
	general := generalPlaceholders(cfg, 2, "08.04.2024", "12.04.2024")

	if general["{NAME}"] != "Max Mustermann" {
		t.Fatalf("unexpected {NAME}: %q", general["{NAME}"])
	}
	if general["{ABJ}"] != "2" {
		t.Fatalf("unexpected {ABJ}: %q", general["{ABJ}"])
	}
	if general["{DATUM_START2}"] != "08.04.2024" || general["{DATUM_ENDE2}"] != "12.04.2024" {
		t.Fatalf("unexpected week range placeholders: %v", general)
	}
}

func TestGeneralPlaceholdersDefaultNA(t *testing.T) {
	cfg := testConfig()
	cfg.Name = ""
	cfg.Year = "  "
	general := generalPlaceholders(cfg, 1, "01.04.2024", "05.04.2024")

	if general["{NAME}"] != "N/A" || general["{ABJ}"] != "N/A" {
		t.Fatalf("expected N/A defaults, got name=%q year=%q", general["{NAME}"], general["{ABJ}"])
	}
}
