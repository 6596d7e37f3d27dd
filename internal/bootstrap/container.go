package bootstrap

import (
	"os"
	"path/filepath"

	"housing-empire-ai/internal/config"
	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/controller"
	"housing-empire-ai/internal/dto"
	"housing-empire-ai/internal/pkg/logger"
	"housing-empire-ai/internal/repository/memory"
	"housing-empire-ai/internal/service"
	"housing-empire-ai/internal/web"
	"housing-empire-ai/pkg/llm"
	"housing-empire-ai/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const activityTopic = "dashboard.activity"

type Container struct {
	// Controllers
	DashboardController controller.IDashboardController
	APIController       controller.IAPIController

	// Exposed for the server's session middleware
	SessionService service.ISessionService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
	pubSub *gochannel.GoChannel
}

type Option func(*containerOptions)

type containerOptions struct {
	providerFactory service.ProviderFactory
	logger          logger.ILogger
}

// WithProviderFactory replaces how a session's LLM provider is built from its
// API key.
func WithProviderFactory(f service.ProviderFactory) Option {
	return func(o *containerOptions) { o.providerFactory = f }
}

func WithLogger(l logger.ILogger) Option {
	return func(o *containerOptions) { o.logger = l }
}

func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	o := containerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Core Facades
	sysLogger := o.logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}

	providerFactory := o.providerFactory
	if providerFactory == nil {
		providerFactory = func(apiKey string) (llm.LLMProvider, error) {
			return factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.LLMBaseURL, apiKey, cfg.Ai.LLMTimeout)
		}
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publisherService := service.NewPublisherService(activityTopic, pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, activityTopic, sysLogger)

	// 3. Services
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)

	model := cfg.Ai.LLMModel
	if model == "" {
		model = constant.DefaultModel
	}

	sessionService := service.NewSessionService(sessionRepo, providerFactory, publisherService, sysLogger)
	leadService := service.NewLeadService(publisherService, sysLogger)
	kpiService := service.NewKPIService(cfg.Resources.KPIFile)
	manualService := service.NewManualService(cfg.Resources.ManualFile)
	generationService := service.NewGenerationService(model, publisherService, sysLogger)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	validate := dto.NewValidator()

	sysLogger.Info("BOOT", "Container ready", map[string]interface{}{
		"llm_provider": cfg.Ai.LLMProvider,
		"llm_model":    model,
	})

	// 4. Controllers
	return &Container{
		DashboardController: controller.NewDashboardController(controller.DashboardDeps{
			SessionService:    sessionService,
			LeadService:       leadService,
			KPIService:        kpiService,
			ManualService:     manualService,
			GenerationService: generationService,
			Validator:         validate,
			Renderer:          renderer,
			LogoURL:           logoURL(cfg.Resources),
			Logger:            sysLogger,
		}),
		APIController:   controller.NewAPIController(sessionService, leadService, kpiService, generationService, validate),
		SessionService:  sessionService,
		ConsumerService: consumerService,
		Logger:          sysLogger,
		pubSub:          pubSub,
	}, nil
}

// Close stops the event bus. Subscribers see their channels closed.
func (c *Container) Close() error {
	return c.pubSub.Close()
}

// logoURL is empty when the logo file is missing so the layout skips it.
func logoURL(res config.ResourceConfig) string {
	if _, err := os.Stat(filepath.Join(res.AssetsDir, res.LogoFile)); err != nil {
		return ""
	}
	return "/assets/" + res.LogoFile
}
