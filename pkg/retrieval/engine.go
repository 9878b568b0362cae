package retrieval

import (
	"context"
	"fmt"

	"ai-onboarding-be/internal/pkg/logger"
	"ai-onboarding-be/pkg/retrieval/access"
	"ai-onboarding-be/pkg/retrieval/assembler"
	"ai-onboarding-be/pkg/retrieval/composer"
	"ai-onboarding-be/pkg/retrieval/ranker"
	"ai-onboarding-be/pkg/store"
)

// Corpus supplies the documents the pipeline retrieves from. Implementations
// must return the latest version of every document; role filtering happens
// inside the engine, never in the corpus.
type Corpus interface {
	ListAll(ctx context.Context) ([]store.Document, error)
}

// Engine runs the full question answering pipeline: permission filter,
// lexical ranking, context assembly, then answer composition. Filtering is
// applied before ranking so inaccessible documents never influence scores,
// budgets or citations.
type Engine struct {
	corpus    Corpus
	ranker    *ranker.Ranker
	assembler *assembler.Assembler
	composer  *composer.Composer
	log       logger.ILogger
}

// NewEngine wires the pipeline stages together.
func NewEngine(corpus Corpus, r *ranker.Ranker, a *assembler.Assembler, c *composer.Composer, log logger.ILogger) *Engine {
	return &Engine{
		corpus:    corpus,
		ranker:    r,
		assembler: a,
		composer:  c,
		log:       log,
	}
}

// Answer resolves one question for one role. Unknown roles and roles with no
// accessible documents get the deterministic no-result answer; only corpus
// errors surface as errors.
func (e *Engine) Answer(ctx context.Context, query, role string) (store.AnswerResult, error) {
	assembled, err := e.retrieve(ctx, query, role)
	if err != nil {
		return store.AnswerResult{}, err
	}

	result := e.composer.Compose(ctx, query, role, assembled)

	e.log.Info("ENGINE", "answer composed", map[string]interface{}{
		"role":      role,
		"sources":   result.Citations,
		"degraded":  result.Degraded,
		"ctx_bytes": assembled.Size,
	})

	return result, nil
}

// Search returns the ranked passages visible to the role without invoking
// the generation model. Used by the document search endpoint.
func (e *Engine) Search(ctx context.Context, query, role string) ([]store.ScoredPassage, error) {
	documents, err := e.corpus.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	permitted := access.Filter(role, documents)
	return e.ranker.Rank(query, permitted), nil
}

func (e *Engine) retrieve(ctx context.Context, query, role string) (*store.AssembledContext, error) {
	documents, err := e.corpus.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	permitted := access.Filter(role, documents)
	if len(permitted) == 0 {
		e.log.Debug("ENGINE", "no documents visible to role", map[string]interface{}{
			"role":  role,
			"total": len(documents),
		})
		return &store.AssembledContext{}, nil
	}

	ranked := e.ranker.Rank(query, permitted)
	return e.assembler.Assemble(ranked), nil
}
