package bootstrap

import (
	"context"
	"log"

	"hireflow-be/internal/config"
	"hireflow-be/internal/constant"
	"hireflow-be/internal/controller"
	"hireflow-be/internal/pkg/logger"
	"hireflow-be/internal/pkg/mailer"
	"hireflow-be/internal/repository/memory"
	"hireflow-be/internal/repository/unitofwork"
	"hireflow-be/internal/service"
	"hireflow-be/internal/websocket"
	"hireflow-be/pkg/interview/evaluate"
	"hireflow-be/pkg/interview/flow"
	"hireflow-be/pkg/interview/session"
	"hireflow-be/pkg/llm"
	"hireflow-be/pkg/llm/factory"
	"hireflow-be/pkg/llm/gateway"
	"hireflow-be/pkg/scoring"
	"hireflow-be/pkg/speech"
	"hireflow-be/pkg/transcript"

	pktNats "hireflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InterviewController   controller.IInterviewController
	ApplicationController controller.IApplicationController
	WalletController      controller.IWalletController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Live capture plumbing for the websocket route
	CaptureHub     *websocket.Hub
	SessionManager *session.Manager
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Provider Chain
	// The fallback order is fixed per deployment; providers that fail to
	// initialize are skipped, not fatal, as long as one remains.
	var providers []llm.LLMProvider
	for _, name := range cfg.Ai.ProviderOrder {
		provider, err := buildProvider(name, cfg)
		if err != nil {
			log.Printf("[WARN] Skipping LLM provider %q: %v", name, err)
			continue
		}
		providers = append(providers, provider)
		log.Printf("[INFO] LLM provider registered: %s", name)
	}
	if len(providers) == 0 {
		log.Fatalf("[FATAL] No usable LLM provider in order %v", cfg.Ai.ProviderOrder)
	}

	synthesizer := speech.NewHuggingFaceTTS(cfg.Keys.HuggingFace, "", cfg.Ai.TTSModel)
	gw := gateway.New(providers, synthesizer, cfg.Ai.AttemptTimeout, sysLogger)

	// 4. Interview Core
	sessionRepo := memory.NewSessionRepository(cfg.Interview.SessionIdleTTL)
	machine := flow.NewMachine(cfg.Interview.PassingScore, cfg.Interview.ProbeLimit)
	sessionManager := session.NewManager(sessionRepo, machine)

	evaluator := evaluate.NewGatewayEvaluator(gw, cfg.Interview.InterviewScoreFloor, sysLogger)
	fusion := transcript.NewFusion(
		cfg.Interview.MinTranscriptLen,
		constant.HallucinationDenylist,
		transcript.NewGatewayPolisher(gw),
		sysLogger,
	)
	aggregator := scoring.NewAggregator(cfg.Interview.EliteThreshold, cfg.Interview.InterviewScoreFloor)

	// 5. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

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

	captureLogger := logger.NewIsolatedLogger("logs/capture.log")
	captureHub := websocket.NewHub(rdb, captureLogger)
	go captureHub.Run()

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.TurnTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.TurnTopic, uowFactory)

	walletService := service.NewWalletService(uowFactory, cfg.Interview.AssessmentUnlockCost, sysLogger)
	scoringService := service.NewScoringService(
		uowFactory,
		aggregator,
		walletService,
		natsPub,
		cfg.Interview,
		sysLogger,
	)
	interviewService := service.NewInterviewService(
		uowFactory,
		sessionManager,
		evaluator,
		gw,
		fusion,
		captureHub,
		scoringService,
		publisherService,
		cfg.Interview,
		sysLogger,
	)

	notifier := service.NewNotifierService(natsSub, uowFactory, emailService, sysLogger)
	if natsSub != nil {
		go notifier.Start()
	}

	// 7. Controllers
	return &Container{
		InterviewController:   controller.NewInterviewController(interviewService),
		ApplicationController: controller.NewApplicationController(scoringService),
		WalletController:      controller.NewWalletController(walletService),

		ConsumerService: consumerService,

		CaptureHub:     captureHub,
		SessionManager: sessionManager,
	}
}

func buildProvider(name string, cfg *config.Config) (llm.LLMProvider, error) {
	switch name {
	case "ollama":
		return factory.NewLLMProvider(name, cfg.Ai.OllamaModel, cfg.Ai.OllamaBaseURL, "")
	case "huggingface":
		return factory.NewLLMProvider(name, cfg.Ai.HuggingFaceModel, "", cfg.Keys.HuggingFace)
	default:
		return factory.NewLLMProvider(name, cfg.Ai.GeminiModel, "", cfg.Keys.GoogleGemini)
	}
}
