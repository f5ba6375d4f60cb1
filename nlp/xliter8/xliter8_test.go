package xliter8

import (
	"testing"
)

func TestArabicTo(t *testing.T) {
	x := &Arabic{}
	if result := x.To("كتب"); result != "ktb" {
		t.Error("Expected ktb got", result)
	}
	if result := x.To("كَتَبَ"); result != "kataba" {
		t.Error("Expected kataba got", result)
	}
	if result := x.To("شمس"); result != "$ms" {
		t.Error("Expected $ms got", result)
	}
}

func TestArabicFrom(t *testing.T) {
	x := &Arabic{}
	if result := x.From("ktb"); result != "كتب" {
		t.Error("Expected كتب got", result)
	}
	if result := x.From(">mr}"); result != "أمرئ" {
		t.Error("Mapping of hamza forms failed, got", result)
	}
}

func TestArabicRoundtrip(t *testing.T) {
	x := &Arabic{}
	words := []string{"كتب", "يَكْتُبُ", "شَمْس", "أَمَل"}
	for _, word := range words {
		if back := x.From(x.To(word)); back != word {
			t.Errorf("Roundtrip of %q gave %q", word, back)
		}
	}
}

func TestArabicPassthrough(t *testing.T) {
	x := &Arabic{}
	if result := x.To("123."); result != "123." {
		t.Error("Digits and punctuation should pass through, got", result)
	}
}
