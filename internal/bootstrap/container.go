package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-onboarding-be/internal/config"
	"ai-onboarding-be/internal/controller"
	"ai-onboarding-be/internal/pkg/logger"
	"ai-onboarding-be/internal/pkg/serverutils"
	"ai-onboarding-be/internal/repository/memory"
	"ai-onboarding-be/internal/repository/unitofwork"
	"ai-onboarding-be/internal/service"
	"ai-onboarding-be/pkg/llm/factory"
	"ai-onboarding-be/pkg/retrieval"
	"ai-onboarding-be/pkg/retrieval/assembler"
	"ai-onboarding-be/pkg/retrieval/composer"
	"ai-onboarding-be/pkg/retrieval/ranker"
	"ai-onboarding-be/pkg/usage"

	pktNats "ai-onboarding-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const auditTopicName = "AUDIT_LOG"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	DocumentController  controller.IDocumentController
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. Retrieval Pipeline
	rank := ranker.New(ranker.Config{
		WindowSize:    cfg.Retrieval.WindowSize,
		WindowOverlap: cfg.Retrieval.WindowOverlap,
		Smoothing:     ranker.DefaultConfig().Smoothing,
		TopK:          cfg.Retrieval.TopK,
	})
	assemble := assembler.New(cfg.Retrieval.ContextBudget)
	compose := composer.New(llmProvider, sysLogger,
		composer.WithTimeout(cfg.Retrieval.GenTimeout),
	)
	corpus := service.NewDocumentCorpus(uowFactory)
	engine := retrieval.NewEngine(corpus, rank, assemble, compose, sysLogger)

	// 5. Services
	answerCache := memory.NewAnswerCache(cfg.Retrieval.AnswerCacheTTL)
	askLimiter := usage.NewLimiter(rdb, sysLogger, cfg.Retrieval.DailyAskLimit)

	publisherService := service.NewPublisherService(auditTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, auditTopicName, uowFactory)

	authService := service.NewAuthService(uowFactory, natsPub, cfg.App.JWTSecret, time.Duration(cfg.App.JWTExpiryHours)*time.Hour)
	documentService := service.NewDocumentService(uowFactory, publisherService, natsPub, sysLogger)
	assistantService := service.NewAssistantService(
		engine,
		uowFactory,
		answerCache,
		askLimiter,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	authMiddleware := serverutils.JwtMiddleware(cfg.App.JWTSecret)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		DocumentController:  controller.NewDocumentController(documentService, authMiddleware),
		AssistantController: controller.NewAssistantController(assistantService, authMiddleware),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
