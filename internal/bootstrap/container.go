package bootstrap

import (
	"log"

	"ai-salesclone-be/internal/config"
	"ai-salesclone-be/internal/controller"
	"ai-salesclone-be/internal/pkg/logger"
	"ai-salesclone-be/internal/pkg/mailer"
	"ai-salesclone-be/internal/repository/unitofwork"
	"ai-salesclone-be/internal/service"
	"ai-salesclone-be/internal/websocket"
	pktNats "ai-salesclone-be/pkg/nats"
	"ai-salesclone-be/pkg/tavus"
	"ai-salesclone-be/pkg/wizard"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Container wires every dependency once at startup.
type Container struct {
	Logger logger.ILogger

	AuthController         controller.IAuthController
	CloneController        controller.ICloneController
	ConversationController controller.IConversationController
	ResourceController     controller.IResourceController
	WizardController       controller.IWizardController

	ConsumerService service.IConsumerService

	Hub *websocket.Hub
}

func NewContainer(gormDB *gorm.DB, cfg *config.Config) *Container {
	// Logging
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-process message bus for analytics events
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional, lifecycle notifications degrade to nothing
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis is optional too: without it the wizard draft lives in memory
	// and status updates stay single-instance
	var redisClient *redis.Client
	if opts, err := redis.ParseURL(cfg.App.RedisURL); err == nil {
		redisClient = redis.NewClient(opts)
	} else {
		log.Printf("[WARN] Invalid REDIS_URL, running without redis: %v", err)
	}

	var draftStore wizard.DraftStore
	if redisClient != nil {
		draftStore = wizard.NewRedisStore(redisClient)
	} else {
		draftStore = wizard.NewMemoryStore()
	}

	// Provider gateway
	gateway := tavus.NewClient(cfg.Tavus.APIKey, cfg.Tavus.BaseURL)
	if !gateway.Configured() {
		log.Println("[WARN] TAVUS_API_KEY is not set, provider operations will fail fast")
	}

	// Websocket hub with its own log file so the status feed noise stays
	// out of the main log
	wsLogger := logger.NewIsolatedLogger("websocket.log")
	hub := websocket.NewHub(redisClient, wsLogger)

	// Repositories
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)

	// Supporting services
	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)
	publisherService := service.NewPublisherService(cfg.App.AnalyticsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.AnalyticsTopic, uowFactory)

	// Domain services
	authService := service.NewAuthService(uowFactory, emailService)
	cloneService := service.NewCloneService(
		uowFactory,
		gateway,
		appLogger,
		publisherService,
		natsPub,
		hub,
		service.TavusDefaults{
			ReplicaID: cfg.Tavus.DefaultReplicaID,
			PersonaID: cfg.Tavus.DefaultPersonaID,
		},
	)
	conversationService := service.NewConversationService(uowFactory, gateway, appLogger)
	resourceService := service.NewResourceService(gateway, appLogger)
	integrationService := service.NewIntegrationService(uowFactory)
	wizardService := service.NewWizardService(draftStore, cloneService)

	return &Container{
		Logger: appLogger,

		AuthController:         controller.NewAuthController(authService),
		CloneController:        controller.NewCloneController(cloneService, conversationService, integrationService),
		ConversationController: controller.NewConversationController(conversationService),
		ResourceController:     controller.NewResourceController(resourceService),
		WizardController:       controller.NewWizardController(wizardService),

		ConsumerService: consumerService,

		Hub: hub,
	}
}
