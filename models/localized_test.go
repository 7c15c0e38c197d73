package models

import "testing"

func TestNewLocalizedText(t *testing.T) {
	lt := NewLocalizedText("Sunny Flat")
	if lt.En != "Sunny Flat" || lt.Vi != "Sunny Flat" {
		t.Errorf("expected value copied to both locales, got %+v", lt)
	}

	empty := NewLocalizedText("")
	if empty.En != "" || empty.Vi != "" {
		t.Errorf("expected empty locales, got %+v", empty)
	}
}

func TestLocalizedTextMatches(t *testing.T) {
	lt := LocalizedText{En: "Apartment", Vi: "Căn hộ"}

	if !lt.Matches("Apartment") {
		t.Error("expected match on English value")
	}
	if !lt.Matches("Căn hộ") {
		t.Error("expected match on Vietnamese value")
	}
	if lt.Matches("Villa") {
		t.Error("unexpected match")
	}
}
