package ranker

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"ai-onboarding-be/pkg/store"
)

func doc(id, content string, createdAt time.Time) store.Document {
	return store.Document{
		ID:         id + "-v1",
		DocumentID: id,
		Version:    1,
		Title:      "Doc " + id,
		OwnerRole:  "analyst",
		Content:    content,
		CreatedAt:  createdAt,
	}
}

func TestRankEmptyQuery(t *testing.T) {
	r := New(DefaultConfig())
	docs := []store.Document{doc("d1", "some content here", time.Now())}

	for _, query := range []string{"", "   ", "!!! ???"} {
		if got := r.Rank(query, docs); got != nil {
			t.Errorf("Rank(%q) = %d passages, want none", query, len(got))
		}
	}
}

func TestRankNoSharedTokens(t *testing.T) {
	r := New(DefaultConfig())
	docs := []store.Document{doc("d1", "alpha beta gamma", time.Now())}

	if got := r.Rank("delta epsilon", docs); len(got) != 0 {
		t.Errorf("expected no passages for disjoint vocabulary, got %d", len(got))
	}
}

func TestRankPrefersDenserPassage(t *testing.T) {
	r := New(DefaultConfig())
	now := time.Now()

	// d1 mentions both query terms in a short passage; d2 mentions one term
	// buried in filler.
	docs := []store.Document{
		doc("d1", "vacation policy: annual vacation days and policy rules", now),
		doc("d2", "vacation "+strings.Repeat("filler words about unrelated topics ", 10), now),
	}

	got := r.Rank("vacation policy", docs)
	if len(got) == 0 {
		t.Fatal("expected passages")
	}
	if got[0].Passage.DocumentID != "d1" {
		t.Errorf("top passage from %s, want d1", got[0].Passage.DocumentID)
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	r := New(DefaultConfig())
	docs := []store.Document{doc("d1", "The Onboarding HANDBOOK covers Security", time.Now())}

	got := r.Rank("onboarding handbook", docs)
	if len(got) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(got))
	}
}

func TestRankDeterministic(t *testing.T) {
	r := New(DefaultConfig())
	now := time.Now()
	docs := []store.Document{
		doc("d1", "budget report for the ministry", now),
		doc("d2", "budget report for the ministry", now.Add(time.Second)),
		doc("d3", "budget report for the ministry", now),
	}

	first := r.Rank("budget report", docs)
	for i := 0; i < 5; i++ {
		again := r.Rank("budget report", docs)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("identical inputs produced different rankings")
		}
	}
}

func TestRankTieBreaks(t *testing.T) {
	r := New(DefaultConfig())
	now := time.Now()

	// Identical content, so identical scores. Newer document wins; same
	// timestamp falls back to the smaller document id.
	docs := []store.Document{
		doc("b", "quarterly budget summary", now),
		doc("a", "quarterly budget summary", now),
		doc("c", "quarterly budget summary", now.Add(time.Minute)),
	}

	got := r.Rank("budget summary", docs)
	if len(got) != 3 {
		t.Fatalf("expected 3 passages, got %d", len(got))
	}
	wantOrder := []string{"c", "a", "b"}
	for i, want := range wantOrder {
		if got[i].Passage.DocumentID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].Passage.DocumentID, want)
		}
	}
}

func TestRankTopK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopK = 3
	r := New(cfg)
	now := time.Now()

	var docs []store.Document
	for _, id := range []string{"d1", "d2", "d3", "d4", "d5"} {
		docs = append(docs, doc(id, "shared keyword content", now))
	}

	got := r.Rank("keyword", docs)
	if len(got) != 3 {
		t.Errorf("TopK=3 returned %d passages", len(got))
	}
}

func TestRankWindowsLongDocument(t *testing.T) {
	cfg := Config{WindowSize: 100, WindowOverlap: 20, Smoothing: 8.0, TopK: 50}
	r := New(cfg)

	// Keyword appears only near the end of a long document; windowing must
	// still surface it.
	content := strings.Repeat("padding text without the term ", 30) + "the special keyword lives here"
	docs := []store.Document{doc("d1", content, time.Now())}

	got := r.Rank("special keyword", docs)
	if len(got) == 0 {
		t.Fatal("expected the tail window to match")
	}
	top := got[0].Passage
	if !strings.Contains(top.Text, "keyword") {
		t.Errorf("top passage does not contain the query term: %q", top.Text)
	}
	if top.Start == 0 {
		t.Error("expected a non-leading window to win")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"v2.0-beta release", []string{"v2", "0", "beta", "release"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
