package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"ai-onboarding-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// AnswerCache memoizes composed answers. The key binds the requesting role,
// the corpus stamp and the normalized query together, so an entry can never
// leak across roles and every document write invalidates prior entries by
// changing the stamp.
type AnswerCache struct {
	cache *cache.Cache
}

func NewAnswerCache(ttl time.Duration) *AnswerCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	c := cache.New(ttl, 10*time.Minute)
	return &AnswerCache{
		cache: c,
	}
}

// Key derives the cache key for one request.
func (r *AnswerCache) Key(role string, corpusStamp int64, query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%s|%d|%s", role, corpusStamp, hex.EncodeToString(sum[:]))
}

func (r *AnswerCache) Save(key string, result store.AnswerResult) {
	r.cache.Set(key, result, cache.DefaultExpiration)
}

func (r *AnswerCache) Get(key string) (store.AnswerResult, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(store.AnswerResult), true
	}
	return store.AnswerResult{}, false
}

func (r *AnswerCache) Flush() {
	r.cache.Flush()
}
