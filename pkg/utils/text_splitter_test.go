package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitWindowsShortText(t *testing.T) {
	text := "short document"
	windows := SplitWindows(text, 100, 20)

	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if windows[0].Start != 0 || windows[0].End != len(text) {
		t.Errorf("window covers [%d,%d), want [0,%d)", windows[0].Start, windows[0].End, len(text))
	}
	if windows[0].Text != text {
		t.Errorf("window text = %q, want %q", windows[0].Text, text)
	}
}

func TestSplitWindowsEmptyText(t *testing.T) {
	if windows := SplitWindows("", 100, 20); windows != nil {
		t.Errorf("expected nil for empty text, got %d windows", len(windows))
	}
}

func TestSplitWindowsFullCoverage(t *testing.T) {
	text := strings.Repeat("abcdefghij", 50) // 500 bytes
	windows := SplitWindows(text, 120, 30)

	if len(windows) < 2 {
		t.Fatalf("expected multiple windows, got %d", len(windows))
	}

	// Every byte must be inside at least one window and neighbours must not
	// leave gaps.
	if windows[0].Start != 0 {
		t.Errorf("first window starts at %d, want 0", windows[0].Start)
	}
	if windows[len(windows)-1].End != len(text) {
		t.Errorf("last window ends at %d, want %d", windows[len(windows)-1].End, len(text))
	}
	for i := 1; i < len(windows); i++ {
		if windows[i].Start > windows[i-1].End {
			t.Errorf("gap between window %d (end %d) and %d (start %d)",
				i-1, windows[i-1].End, i, windows[i].Start)
		}
	}
}

func TestSplitWindowsOffsetsMatchText(t *testing.T) {
	text := strings.Repeat("the quick brown fox ", 30)
	for _, w := range SplitWindows(text, 100, 25) {
		if text[w.Start:w.End] != w.Text {
			t.Errorf("window [%d,%d) text mismatch", w.Start, w.End)
		}
		if len(w.Text) > 100 {
			t.Errorf("window [%d,%d) is %d bytes, budget 100", w.Start, w.End, len(w.Text))
		}
	}
}

func TestSplitWindowsRuneBoundaries(t *testing.T) {
	// Cyrillic characters are 2 bytes each; windows must never cut one in half.
	text := strings.Repeat("тестовый документ ", 40)
	for _, w := range SplitWindows(text, 90, 20) {
		if !utf8.ValidString(w.Text) {
			t.Errorf("window [%d,%d) splits a multi-byte rune", w.Start, w.End)
		}
	}
}

func TestSplitWindowsOverlapAtLeastSize(t *testing.T) {
	// overlap >= size must not loop forever; the step falls back to size.
	text := strings.Repeat("x", 300)
	windows := SplitWindows(text, 100, 100)

	if len(windows) == 0 {
		t.Fatal("expected windows, got none")
	}
	if windows[len(windows)-1].End != len(text) {
		t.Errorf("last window ends at %d, want %d", windows[len(windows)-1].End, len(text))
	}
}
