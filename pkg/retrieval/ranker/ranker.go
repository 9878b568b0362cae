package ranker

import (
	"sort"
	"strings"
	"unicode"

	"ai-onboarding-be/pkg/store"
	"ai-onboarding-be/pkg/utils"
)

// Config encapsulates ranking parameters.
type Config struct {
	WindowSize    int     // passage window size in bytes
	WindowOverlap int     // bytes shared between neighbouring windows
	Smoothing     float64 // length-penalty constant added to the denominator
	TopK          int     // max passages returned; 0 means unlimited
}

// DefaultConfig returns the ranking configuration used in production.
func DefaultConfig() Config {
	return Config{
		WindowSize:    600,
		WindowOverlap: 120,
		Smoothing:     8.0,
		TopK:          20,
	}
}

// Ranker scores document passages against a query using lexical overlap.
// No index is assumed: every permitted document is windowed and scored per
// request. The contract is deliberately narrow so the implementation can be
// swapped for an inverted index or embedding retriever later.
type Ranker struct {
	cfg Config
}

// New creates a ranker with the given configuration.
func New(cfg Config) *Ranker {
	if cfg.WindowSize <= 0 {
		cfg = DefaultConfig()
	}
	return &Ranker{cfg: cfg}
}

// Rank returns passages from the given documents ordered by descending
// relevance to the query. The caller is responsible for passing only
// documents the requesting role may read.
//
// An empty query, or one with no surviving tokens, yields an empty result.
// Ranking is deterministic for identical inputs, including tie order:
// equal scores prefer the most recently created document version, then the
// lexicographically smaller document id, then the smaller window offset.
func (r *Ranker) Rank(query string, documents []store.Document) []store.ScoredPassage {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	querySet := make(map[string]bool, len(queryTokens))
	for _, t := range queryTokens {
		querySet[t] = true
	}

	var scored []store.ScoredPassage
	createdAt := make(map[string]int64, len(documents))

	for _, doc := range documents {
		createdAt[doc.DocumentID] = doc.CreatedAt.UnixNano()

		for _, w := range utils.SplitWindows(doc.Content, r.cfg.WindowSize, r.cfg.WindowOverlap) {
			passageTokens := Tokenize(w.Text)
			if len(passageTokens) == 0 {
				continue
			}

			shared := countShared(querySet, passageTokens)
			if shared == 0 {
				continue
			}

			// Monotonic in shared-token count, penalized by passage length
			// so long passages cannot win on volume alone.
			score := float64(shared) / (float64(len(passageTokens)) + r.cfg.Smoothing)

			scored = append(scored, store.ScoredPassage{
				Passage: store.Passage{
					DocumentID: doc.DocumentID,
					Title:      doc.Title,
					Start:      w.Start,
					End:        w.End,
					Text:       w.Text,
				},
				Score: score,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ca, cb := createdAt[a.Passage.DocumentID], createdAt[b.Passage.DocumentID]
		if ca != cb {
			return ca > cb // newer document version first
		}
		if a.Passage.DocumentID != b.Passage.DocumentID {
			return a.Passage.DocumentID < b.Passage.DocumentID
		}
		return a.Passage.Start < b.Passage.Start
	})

	if r.cfg.TopK > 0 && len(scored) > r.cfg.TopK {
		scored = scored[:r.cfg.TopK]
	}

	return scored
}

// Tokenize lowercases the text and splits it on any non letter/digit rune.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// countShared counts the distinct query tokens present in the passage.
func countShared(querySet map[string]bool, passageTokens []string) int {
	seen := make(map[string]bool)
	for _, t := range passageTokens {
		if querySet[t] && !seen[t] {
			seen[t] = true
		}
	}
	return len(seen)
}
