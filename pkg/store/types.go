package store

import "time"

// Document is the read-only view of a stored document that flows through the
// retrieval pipeline. It is a snapshot of one immutable version; the pipeline
// never mutates it.
type Document struct {
	ID         string    `json:"id"`          // version row id
	DocumentID string    `json:"document_id"` // logical document id (stable across versions)
	Version    int       `json:"version"`
	Title      string    `json:"title"`
	OwnerRole  string    `json:"owner_role"`
	Content    string    `json:"content"`
	Category   string    `json:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Passage is a contiguous slice of a document's content, derived at query
// time. Passages are request-scoped and never persisted or cached without a
// key that includes both document version and requesting role.
type Passage struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Start      int    `json:"start"` // byte offset into the document content
	End        int    `json:"end"`   // exclusive
	Text       string `json:"text"`
}

// ScoredPassage pairs a passage with its relevance score. Produced by the
// ranker, consumed by the context assembler.
type ScoredPassage struct {
	Passage Passage `json:"passage"`
	Score   float64 `json:"score"`
}

// AssembledContext is the ordered, budget-bounded selection of passages that
// grounds one answer. Sources carries the distinct document ids in selection
// order for citation.
type AssembledContext struct {
	Passages []ScoredPassage `json:"passages"`
	Sources  []string        `json:"sources"`
	Size     int             `json:"size"` // combined passage text size in bytes
}

// Empty reports whether no passage survived assembly. An empty context is a
// valid outcome, not an error; the composer turns it into a degraded answer.
func (c *AssembledContext) Empty() bool {
	return c == nil || len(c.Passages) == 0
}

// AnswerResult is the pipeline's final product. Degraded is true when no
// relevant passage was found or the generation model failed; Citations then
// still reflect the documents that were assembled, if any.
type AnswerResult struct {
	Answer    string   `json:"answer"`
	Citations []string `json:"citations"`
	Degraded  bool     `json:"degraded"`
}
