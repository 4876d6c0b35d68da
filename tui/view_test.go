package tui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsShortStrings(t *testing.T) {
	if got := truncate("buy milk", 30); got != "buy milk" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	titles := []string{
		"éèêëéèêëéèêëéèêëéèêë",
		"日本語のタスクのタイトルです",
		"mixascii日本語mixedタイトル",
	}
	for _, title := range titles {
		for max := 4; max < 12; max++ {
			got := truncate(title, max)
			if !utf8.ValidString(got) {
				t.Fatalf("truncate(%q, %d) produced invalid UTF-8: %q", title, max, got)
			}
			if n := len([]rune(got)); n > max {
				t.Fatalf("truncate(%q, %d) kept %d runes", title, max, n)
			}
		}
	}
}
