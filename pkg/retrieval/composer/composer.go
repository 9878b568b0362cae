package composer

import (
	"context"
	"strings"
	"time"

	"ai-onboarding-be/internal/constant"
	"ai-onboarding-be/internal/pkg/logger"
	"ai-onboarding-be/pkg/llm"
	"ai-onboarding-be/pkg/retrieval/prompt"
	"ai-onboarding-be/pkg/store"
)

// Composer turns an assembled context into the final answer. It owns the two
// degraded paths: an empty context yields a fixed no-result answer without
// touching the generation model, and a model failure yields a fixed fallback
// answer that still carries the citations of the assembled context.
type Composer struct {
	provider    llm.LLMProvider
	log         logger.ILogger
	timeout     time.Duration
	temperature float64
	maxTokens   int
}

// Option configures a Composer.
type Option func(*Composer)

// WithTimeout bounds each generation call. Zero keeps the provider's own
// client timeout as the only bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Composer) { c.timeout = d }
}

// WithTemperature sets the generation temperature.
func WithTemperature(t float64) Option {
	return func(c *Composer) { c.temperature = t }
}

// WithMaxTokens caps the generated answer length.
func WithMaxTokens(n int) Option {
	return func(c *Composer) { c.maxTokens = n }
}

// New creates a composer backed by the given provider.
func New(provider llm.LLMProvider, log logger.ILogger, opts ...Option) *Composer {
	c := &Composer{
		provider:    provider,
		log:         log,
		timeout:     30 * time.Second,
		temperature: 0.3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose produces the answer for one request. It never returns an error:
// every failure downgrades to a deterministic fallback so the caller always
// has something presentable. The degraded flag tells callers apart.
func (c *Composer) Compose(ctx context.Context, query, role string, assembled *store.AssembledContext) store.AnswerResult {
	if assembled.Empty() {
		c.log.Info("COMPOSER", "no relevant context, returning fallback without generation", map[string]interface{}{
			"role": role,
		})
		return store.AnswerResult{
			Answer:    constant.NoRelevantDocumentAnswer,
			Citations: []string{},
			Degraded:  true,
		}
	}

	builder := prompt.NewContextualBuilder(query, role, assembled)

	genCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := []llm.Option{llm.WithTemperature(c.temperature)}
	if c.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(c.maxTokens))
	}

	answer, err := c.provider.Generate(genCtx, builder.Build(), opts...)
	if err != nil {
		c.log.Error("COMPOSER", "generation failed, returning degraded answer", map[string]interface{}{
			"error":   err.Error(),
			"role":    role,
			"sources": assembled.Sources,
		})
		return store.AnswerResult{
			Answer:    constant.GenerationFailedAnswer,
			Citations: citations(assembled),
			Degraded:  true,
		}
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		c.log.Warn("COMPOSER", "model returned an empty answer", map[string]interface{}{
			"role": role,
		})
		return store.AnswerResult{
			Answer:    constant.GenerationFailedAnswer,
			Citations: citations(assembled),
			Degraded:  true,
		}
	}

	return store.AnswerResult{
		Answer:    answer,
		Citations: citations(assembled),
		Degraded:  false,
	}
}

// citations copies the source list so callers cannot mutate the assembled
// context through the result.
func citations(assembled *store.AssembledContext) []string {
	out := make([]string, len(assembled.Sources))
	copy(out, assembled.Sources)
	return out
}
