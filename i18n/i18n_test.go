package i18n

import (
	"strings"
	"testing"
	"time"
)

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("es-PE,es;q=0.8") != "es" {
		t.Fatalf("expected es")
	}
	if DetectLanguage("fr-FR,fr;q=0.8") != "es" {
		t.Fatalf("expected es fallback")
	}
	if DetectLanguage("") != "es" {
		t.Fatalf("expected default es")
	}
	if DetectLanguage(";;;") != "es" {
		t.Fatalf("expected default es for malformed header")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("es", "required") != "Obligatorio" {
		t.Fatalf("expected Obligatorio")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to es translation if exists
	if T("fr", "required") != "Obligatorio" {
		t.Fatalf("expected es fallback for fr lang")
	}
}

func TestCataloguesHaveSameKeys(t *testing.T) {
	for code := range catalog["es"] {
		if _, ok := catalog["en"][code]; !ok {
			t.Errorf("en missing %q", code)
		}
	}
	for code := range catalog["en"] {
		if _, ok := catalog["es"][code]; !ok {
			t.Errorf("es missing %q", code)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		lang  string
		month time.Month
		want  string
	}{
		{"es", time.January, "ene 2025"},
		{"es", time.February, "feb 2025"},
		{"es", time.December, "dic 2025"},
		{"en", time.January, "Jan 2025"},
		{"xx", time.March, "mar 2025"},
	}
	for _, tt := range tests {
		if got := MonthLabel(tt.lang, 2025, tt.month); got != tt.want {
			t.Errorf("MonthLabel(%s, %v) = %q, want %q", tt.lang, tt.month, got, tt.want)
		}
	}
}

func TestMoney(t *testing.T) {
	got := Money("en", 225)
	if !strings.HasPrefix(got, "S/ ") || !strings.Contains(got, "225") {
		t.Fatalf("unexpected money format %q", got)
	}
}
