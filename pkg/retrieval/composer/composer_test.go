package composer

import (
	"context"
	"errors"
	"testing"

	"ai-onboarding-be/internal/constant"
	"ai-onboarding-be/pkg/llm"
	"ai-onboarding-be/pkg/store"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func assembled() *store.AssembledContext {
	return &store.AssembledContext{
		Passages: []store.ScoredPassage{
			{Passage: store.Passage{DocumentID: "d1", Title: "Handbook", Text: "leave is 21 days"}, Score: 0.5},
		},
		Sources: []string{"d1"},
		Size:    16,
	}
}

func TestComposeEmptyContextSkipsModel(t *testing.T) {
	provider := &fakeProvider{response: "should never be used"}
	c := New(provider, nopLogger{})

	result := c.Compose(context.Background(), "anything", "analyst", &store.AssembledContext{})

	if provider.calls != 0 {
		t.Errorf("model was called %d times for an empty context", provider.calls)
	}
	if !result.Degraded {
		t.Error("expected degraded result")
	}
	if result.Answer != constant.NoRelevantDocumentAnswer {
		t.Errorf("answer = %q, want the fixed no-result fallback", result.Answer)
	}
	if len(result.Citations) != 0 {
		t.Errorf("expected no citations, got %v", result.Citations)
	}
}

func TestComposeNilContextSkipsModel(t *testing.T) {
	provider := &fakeProvider{}
	c := New(provider, nopLogger{})

	result := c.Compose(context.Background(), "anything", "analyst", nil)
	if provider.calls != 0 || !result.Degraded {
		t.Error("nil context must take the no-result path without a model call")
	}
}

func TestComposeModelFailureKeepsCitations(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream timeout")}
	c := New(provider, nopLogger{})

	result := c.Compose(context.Background(), "how many leave days?", "analyst", assembled())

	if !result.Degraded {
		t.Error("expected degraded result after model failure")
	}
	if result.Answer != constant.GenerationFailedAnswer {
		t.Errorf("answer = %q, want the fixed generation fallback", result.Answer)
	}
	if len(result.Citations) != 1 || result.Citations[0] != "d1" {
		t.Errorf("citations = %v, want [d1]", result.Citations)
	}
}

func TestComposeEmptyModelAnswerDegrades(t *testing.T) {
	provider := &fakeProvider{response: "   \n"}
	c := New(provider, nopLogger{})

	result := c.Compose(context.Background(), "question", "analyst", assembled())
	if !result.Degraded {
		t.Error("whitespace-only model output must degrade")
	}
}

func TestComposeSuccess(t *testing.T) {
	provider := &fakeProvider{response: "You get 21 working days of annual leave."}
	c := New(provider, nopLogger{})

	result := c.Compose(context.Background(), "how many leave days?", "analyst", assembled())

	if result.Degraded {
		t.Error("unexpected degraded flag on success")
	}
	if result.Answer != provider.response {
		t.Errorf("answer = %q, want model output", result.Answer)
	}
	if len(result.Citations) != 1 || result.Citations[0] != "d1" {
		t.Errorf("citations = %v, want [d1]", result.Citations)
	}
}

func TestComposeCitationsAreCopied(t *testing.T) {
	provider := &fakeProvider{response: "answer"}
	c := New(provider, nopLogger{})
	ctx := assembled()

	result := c.Compose(context.Background(), "q", "analyst", ctx)
	result.Citations[0] = "mutated"

	if ctx.Sources[0] != "d1" {
		t.Error("mutating the result leaked into the assembled context")
	}
}
