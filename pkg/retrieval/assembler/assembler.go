package assembler

import "ai-onboarding-be/pkg/store"

// Assembler selects top-ranked passages into a size-bounded context with
// provenance tracking.
type Assembler struct {
	budget int // max combined passage text size in bytes
}

// New creates an assembler with the given context budget.
func New(budget int) *Assembler {
	return &Assembler{budget: budget}
}

// Assemble greedily takes passages in ranked order, accumulating size and
// stopping before the running total would exceed the budget. Overlapping
// windows of the same document are deduplicated so near-identical text never
// appears twice in the final context.
//
// An empty ranked sequence yields an empty context, not an error; that is
// the signal the composer uses to produce a degraded response.
func (a *Assembler) Assemble(ranked []store.ScoredPassage) *store.AssembledContext {
	ctx := &store.AssembledContext{}
	seenSource := make(map[string]bool)

	for _, sp := range ranked {
		if ctx.Size+len(sp.Passage.Text) > a.budget {
			continue // keep trying smaller passages further down the ranking
		}
		if overlapsSelected(ctx.Passages, sp.Passage) {
			continue
		}

		ctx.Passages = append(ctx.Passages, sp)
		ctx.Size += len(sp.Passage.Text)

		if !seenSource[sp.Passage.DocumentID] {
			seenSource[sp.Passage.DocumentID] = true
			ctx.Sources = append(ctx.Sources, sp.Passage.DocumentID)
		}
	}

	return ctx
}

// overlapsSelected reports whether the candidate shares its document and an
// offset range with an already selected passage.
func overlapsSelected(selected []store.ScoredPassage, candidate store.Passage) bool {
	for _, sp := range selected {
		p := sp.Passage
		if p.DocumentID != candidate.DocumentID {
			continue
		}
		if candidate.Start < p.End && p.Start < candidate.End {
			return true
		}
	}
	return false
}
