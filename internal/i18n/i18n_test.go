package i18n

import "testing"

func TestT_Basic(t *testing.T) {
	if got := T(LangEnglish, "home.new_quiz"); got != "NEW QUIZ" {
		t.Errorf("got %q", got)
	}
	if got := T(LangHindi, "home.new_quiz"); got != "नई क्विज़" {
		t.Errorf("got %q", got)
	}
}

func TestT_Formatting(t *testing.T) {
	if got := T(LangEnglish, "home.streak", 7); got != "7 day streak" {
		t.Errorf("got %q", got)
	}
}

func TestT_UnknownKeyFallsBack(t *testing.T) {
	if got := T(LangHindi, "no.such.key"); got != "no.such.key" {
		t.Errorf("got %q", got)
	}
}

func TestHindiCatalogComplete(t *testing.T) {
	for key := range catalogs[LangEnglish] {
		if _, ok := catalogs[LangHindi][key]; !ok {
			t.Errorf("hindi catalog missing %q", key)
		}
	}
}

func TestLanguageName(t *testing.T) {
	if LangEnglish.LanguageName() != "English" || LangHindi.LanguageName() != "Hindi" {
		t.Error("unexpected language names")
	}
}
