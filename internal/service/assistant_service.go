package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-onboarding-be/internal/dto"
	"ai-onboarding-be/internal/pkg/logger"
	"ai-onboarding-be/internal/repository/memory"
	"ai-onboarding-be/internal/repository/unitofwork"
	"ai-onboarding-be/pkg/events"
	pktNats "ai-onboarding-be/pkg/nats"
	"ai-onboarding-be/pkg/retrieval"
	"ai-onboarding-be/pkg/store"
	"ai-onboarding-be/pkg/usage"

	"github.com/google/uuid"
)

var ErrQuotaExceeded = errors.New("daily question limit reached")

type IAssistantService interface {
	Ask(ctx context.Context, userId uuid.UUID, role string, req *dto.AskRequest) (*dto.AskResponse, error)
	Search(ctx context.Context, role, query string) (*dto.SearchResponse, error)
}

type assistantService struct {
	engine           *retrieval.Engine
	uowFactory       unitofwork.RepositoryFactory
	answerCache      *memory.AnswerCache
	limiter          *usage.Limiter
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewAssistantService(
	engine *retrieval.Engine,
	uowFactory unitofwork.RepositoryFactory,
	answerCache *memory.AnswerCache,
	limiter *usage.Limiter,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		engine:           engine,
		uowFactory:       uowFactory,
		answerCache:      answerCache,
		limiter:          limiter,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *assistantService) Ask(ctx context.Context, userId uuid.UUID, role string, req *dto.AskRequest) (*dto.AskResponse, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, userId.String())
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrQuotaExceeded
		}
	}

	// The cache key carries the corpus stamp, so a stale entry can never
	// survive a document write, and the role, so answers never cross the
	// access boundary.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stamp, err := uow.DocumentRepository().CorpusStamp(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := s.answerCache.Key(role, stamp, req.Question)
	if cached, found := s.answerCache.Get(cacheKey); found {
		s.log.Debug("ASSISTANT", "answer served from cache", map[string]interface{}{
			"role": role,
		})
		// A cache-served ask is still an ask; the trail must record it.
		s.recordAsk(ctx, userId, role, cached, true)
		return &dto.AskResponse{
			Answer:    cached.Answer,
			Citations: cached.Citations,
			Degraded:  cached.Degraded,
			Cached:    true,
		}, nil
	}

	result, err := s.engine.Answer(ctx, req.Question, role)
	if err != nil {
		return nil, err
	}

	// Degraded answers are not cached: a model hiccup should not pin its
	// fallback for the whole TTL.
	if !result.Degraded {
		s.answerCache.Save(cacheKey, result)
	}

	s.recordAsk(ctx, userId, role, result, false)

	return &dto.AskResponse{
		Answer:    result.Answer,
		Citations: result.Citations,
		Degraded:  result.Degraded,
	}, nil
}

// recordAsk writes the audit entry and publishes the domain event for one
// answered question, cached or freshly composed.
func (s *assistantService) recordAsk(ctx context.Context, userId uuid.UUID, role string, result store.AnswerResult, cached bool) {
	s.audit(ctx, userId, "QUESTION_ASKED", map[string]interface{}{
		"role":      role,
		"degraded":  result.Degraded,
		"citations": result.Citations,
		"cached":    cached,
	})

	if s.eventPublisher != nil {
		evt := events.NewQuestionAnswered(role, result.Degraded, result.Citations)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish QUESTION_ANSWERED event: %v\n", err)
		}
	}
}

func (s *assistantService) Search(ctx context.Context, role, query string) (*dto.SearchResponse, error) {
	ranked, err := s.engine.Search(ctx, query, role)
	if err != nil {
		return nil, err
	}

	passages := make([]dto.SearchPassageResponse, len(ranked))
	for i, sp := range ranked {
		passages[i] = dto.SearchPassageResponse{
			DocumentId: sp.Passage.DocumentID,
			Title:      sp.Passage.Title,
			Snippet:    snippet(sp.Passage.Text, 240),
			Score:      sp.Score,
		}
	}

	return &dto.SearchResponse{Passages: passages}, nil
}

func (s *assistantService) audit(ctx context.Context, userId uuid.UUID, action string, details map[string]interface{}) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.AuditMessage{
		UserId:  userId,
		Action:  action,
		Details: details,
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("ASSISTANT", "failed to publish audit message", map[string]interface{}{
			"error":  err.Error(),
			"action": action,
		})
	}
}

// snippet trims the passage for listing without cutting inside a rune.
func snippet(text string, max int) string {
	if len(text) <= max {
		return text
	}
	runes := []rune(text)
	out := make([]rune, 0, max/2)
	size := 0
	for _, r := range runes {
		size += len(string(r))
		if size > max {
			break
		}
		out = append(out, r)
	}
	return string(out) + "..."
}
