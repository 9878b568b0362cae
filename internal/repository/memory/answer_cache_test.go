package memory

import (
	"testing"
	"time"

	"ai-onboarding-be/pkg/store"
)

func TestAnswerCacheRoundTrip(t *testing.T) {
	c := NewAnswerCache(time.Minute)

	result := store.AnswerResult{
		Answer:    "21 working days",
		Citations: []string{"handbook"},
	}

	key := c.Key("analyst", 3, "how many leave days?")
	c.Save(key, result)

	got, found := c.Get(key)
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.Answer != result.Answer {
		t.Errorf("answer = %q, want %q", got.Answer, result.Answer)
	}
}

func TestAnswerCacheMiss(t *testing.T) {
	c := NewAnswerCache(time.Minute)

	if _, found := c.Get(c.Key("analyst", 1, "anything")); found {
		t.Error("unexpected hit on empty cache")
	}
}

func TestAnswerCacheKeySeparatesRoles(t *testing.T) {
	c := NewAnswerCache(time.Minute)

	adminKey := c.Key("admin", 3, "credential rotation?")
	analystKey := c.Key("analyst", 3, "credential rotation?")
	if adminKey == analystKey {
		t.Fatal("cache key must differ per role")
	}

	c.Save(adminKey, store.AnswerResult{Answer: "every 90 days", Citations: []string{"runbook"}})
	if _, found := c.Get(analystKey); found {
		t.Error("analyst key hit an admin entry")
	}
}

func TestAnswerCacheKeySeparatesCorpusStamps(t *testing.T) {
	c := NewAnswerCache(time.Minute)

	before := c.Key("analyst", 3, "leave days?")
	after := c.Key("analyst", 4, "leave days?")
	if before == after {
		t.Fatal("cache key must change when the corpus changes")
	}
}

func TestAnswerCacheKeyNormalizesQuery(t *testing.T) {
	c := NewAnswerCache(time.Minute)

	a := c.Key("analyst", 3, "  Leave Days?  ")
	b := c.Key("analyst", 3, "leave days?")
	if a != b {
		t.Error("whitespace and case variants should share a key")
	}
}
