package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-onboarding-be/internal/constant"
	"ai-onboarding-be/pkg/llm"
	"ai-onboarding-be/pkg/retrieval/access"
	"ai-onboarding-be/pkg/retrieval/assembler"
	"ai-onboarding-be/pkg/retrieval/composer"
	"ai-onboarding-be/pkg/retrieval/ranker"
	"ai-onboarding-be/pkg/store"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeCorpus struct {
	documents []store.Document
	err       error
}

func (f *fakeCorpus) ListAll(ctx context.Context) ([]store.Document, error) {
	return f.documents, f.err
}

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

func testEngine(corpus Corpus, provider llm.LLMProvider) *Engine {
	return NewEngine(
		corpus,
		ranker.New(ranker.DefaultConfig()),
		assembler.New(4000),
		composer.New(provider, nopLogger{}),
		nopLogger{},
	)
}

func restrictedCorpus() *fakeCorpus {
	now := time.Now()
	return &fakeCorpus{
		documents: []store.Document{
			{
				ID:         "v1",
				DocumentID: "handbook",
				Version:    1,
				Title:      "Employee Handbook",
				OwnerRole:  access.RoleAnalyst,
				Content:    "Annual leave is 21 working days. Requests go through the HR portal.",
				CreatedAt:  now,
			},
			{
				ID:         "v2",
				DocumentID: "runbook",
				Version:    1,
				Title:      "Admin Runbook",
				OwnerRole:  access.RoleAdmin,
				Content:    "Database credentials rotate every 90 days using the hardware token vault.",
				CreatedAt:  now,
			},
		},
	}
}

func TestAnswerAdminSeesRestrictedDocument(t *testing.T) {
	provider := &fakeProvider{response: "Credentials rotate every 90 days."}
	e := testEngine(restrictedCorpus(), provider)

	result, err := e.Answer(context.Background(), "how often do database credentials rotate?", access.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Degraded {
		t.Fatal("admin should get a grounded answer")
	}
	found := false
	for _, c := range result.Citations {
		if c == "runbook" {
			found = true
		}
	}
	if !found {
		t.Errorf("citations %v missing the runbook", result.Citations)
	}
}

func TestAnswerAnalystCannotReachRestrictedDocument(t *testing.T) {
	provider := &fakeProvider{response: "should not leak"}
	e := testEngine(restrictedCorpus(), provider)

	// Only the admin runbook talks about credential rotation. For an analyst
	// the pipeline must behave as if that document does not exist.
	result, err := e.Answer(context.Background(), "database credentials rotate vault", access.RoleAnalyst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Degraded {
		t.Fatal("analyst must get the degraded no-result answer")
	}
	if result.Answer != constant.NoRelevantDocumentAnswer {
		t.Errorf("answer = %q, want the fixed no-result fallback", result.Answer)
	}
	if provider.calls != 0 {
		t.Errorf("model was called %d times despite empty context", provider.calls)
	}
	for _, c := range result.Citations {
		if c == "runbook" {
			t.Error("restricted document leaked into citations")
		}
	}
}

func TestAnswerCitationsStayInsideReadSet(t *testing.T) {
	provider := &fakeProvider{response: "answer"}
	corpus := restrictedCorpus()
	e := testEngine(corpus, provider)

	queries := []string{
		"leave days portal",
		"credentials rotate",
		"handbook runbook token vault leave",
	}
	roles := []string{access.RoleAdmin, access.RoleMinister, access.RoleAnalyst, "guest"}

	ownerByID := map[string]string{}
	for _, d := range corpus.documents {
		ownerByID[d.DocumentID] = d.OwnerRole
	}

	for _, role := range roles {
		for _, q := range queries {
			result, err := e.Answer(context.Background(), q, role)
			if err != nil {
				t.Fatalf("Answer(%q, %q): %v", q, role, err)
			}
			for _, c := range result.Citations {
				if !access.CanRead(role, ownerByID[c]) {
					t.Errorf("role %q cited %q owned by %q", role, c, ownerByID[c])
				}
			}
		}
	}
}

func TestAnswerUnknownRoleGetsNoResult(t *testing.T) {
	provider := &fakeProvider{}
	e := testEngine(restrictedCorpus(), provider)

	result, err := e.Answer(context.Background(), "leave days", "contractor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Degraded || result.Answer != constant.NoRelevantDocumentAnswer {
		t.Error("unknown role must fail closed with the no-result answer")
	}
}

func TestAnswerModelFailurePreservesCitations(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model unavailable")}
	e := testEngine(restrictedCorpus(), provider)

	result, err := e.Answer(context.Background(), "annual leave working days", access.RoleAnalyst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Answer != constant.GenerationFailedAnswer {
		t.Errorf("answer = %q, want the generation fallback", result.Answer)
	}
	if len(result.Citations) == 0 {
		t.Error("citations must survive a model failure")
	}
}

func TestAnswerCorpusError(t *testing.T) {
	e := testEngine(&fakeCorpus{err: errors.New("db down")}, &fakeProvider{})

	if _, err := e.Answer(context.Background(), "anything", access.RoleAdmin); err == nil {
		t.Error("expected corpus errors to surface")
	}
}

func TestSearchFiltersByRole(t *testing.T) {
	e := testEngine(restrictedCorpus(), &fakeProvider{})

	ranked, err := e.Search(context.Background(), "credentials rotate vault", access.RoleAnalyst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sp := range ranked {
		if sp.Passage.DocumentID == "runbook" {
			t.Error("restricted document surfaced in analyst search")
		}
	}

	ranked, err = e.Search(context.Background(), "credentials rotate vault", access.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) == 0 {
		t.Error("admin search found nothing")
	}
}
