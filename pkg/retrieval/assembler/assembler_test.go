package assembler

import (
	"strings"
	"testing"

	"ai-onboarding-be/pkg/store"
)

func scored(docID string, start, end int, text string, score float64) store.ScoredPassage {
	return store.ScoredPassage{
		Passage: store.Passage{
			DocumentID: docID,
			Title:      "Doc " + docID,
			Start:      start,
			End:        end,
			Text:       text,
		},
		Score: score,
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	a := New(1000)

	ctx := a.Assemble(nil)
	if !ctx.Empty() {
		t.Error("expected empty context for empty ranking")
	}
	if ctx.Size != 0 {
		t.Errorf("empty context has size %d", ctx.Size)
	}
}

func TestAssembleRespectsBudget(t *testing.T) {
	a := New(25)

	ranked := []store.ScoredPassage{
		scored("d1", 0, 10, strings.Repeat("a", 10), 0.9),
		scored("d2", 0, 10, strings.Repeat("b", 10), 0.8),
		scored("d3", 0, 10, strings.Repeat("c", 10), 0.7),
	}

	ctx := a.Assemble(ranked)
	if ctx.Size > 25 {
		t.Errorf("assembled size %d exceeds budget 25", ctx.Size)
	}
	if len(ctx.Passages) != 2 {
		t.Errorf("expected 2 passages under the budget, got %d", len(ctx.Passages))
	}
}

func TestAssembleSkipsOversizedButKeepsScanning(t *testing.T) {
	a := New(20)

	// The second passage alone blows the remaining budget; the third still
	// fits and must be taken.
	ranked := []store.ScoredPassage{
		scored("d1", 0, 12, strings.Repeat("a", 12), 0.9),
		scored("d2", 0, 15, strings.Repeat("b", 15), 0.8),
		scored("d3", 0, 5, strings.Repeat("c", 5), 0.7),
	}

	ctx := a.Assemble(ranked)
	if len(ctx.Passages) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(ctx.Passages))
	}
	if ctx.Passages[1].Passage.DocumentID != "d3" {
		t.Errorf("expected d3 to be selected, got %s", ctx.Passages[1].Passage.DocumentID)
	}
}

func TestAssembleDeduplicatesOverlappingWindows(t *testing.T) {
	a := New(1000)

	// Two windows of the same document share the byte range [80,100); the
	// second must be dropped. A window from another document with the same
	// offsets is unrelated and stays.
	ranked := []store.ScoredPassage{
		scored("d1", 0, 100, "window one", 0.9),
		scored("d1", 80, 180, "window two", 0.8),
		scored("d2", 0, 100, "other doc", 0.7),
		scored("d1", 100, 200, "window three", 0.6),
	}

	ctx := a.Assemble(ranked)
	if len(ctx.Passages) != 3 {
		t.Fatalf("expected 3 passages, got %d", len(ctx.Passages))
	}
	for _, sp := range ctx.Passages {
		if sp.Passage.Text == "window two" {
			t.Error("overlapping window was not deduplicated")
		}
	}
}

func TestAssembleSourcesInSelectionOrder(t *testing.T) {
	a := New(1000)

	ranked := []store.ScoredPassage{
		scored("d2", 0, 10, "first pick", 0.9),
		scored("d1", 0, 10, "second pick", 0.8),
		scored("d2", 100, 110, "same source again", 0.7),
	}

	ctx := a.Assemble(ranked)
	want := []string{"d2", "d1"}
	if len(ctx.Sources) != len(want) {
		t.Fatalf("got %d sources, want %d", len(ctx.Sources), len(want))
	}
	for i := range want {
		if ctx.Sources[i] != want[i] {
			t.Errorf("sources[%d] = %s, want %s", i, ctx.Sources[i], want[i])
		}
	}
}
