package bootstrap

import (
	"edge-ai-be/internal/config"
	"edge-ai-be/internal/controller"
	"edge-ai-be/internal/pkg/logger"
	"edge-ai-be/internal/pkg/serverutils"
	"edge-ai-be/internal/repository/memory"
	"edge-ai-be/internal/repository/unitofwork"
	"edge-ai-be/internal/service"
	"edge-ai-be/pkg/airesponse"
	"edge-ai-be/pkg/events"
	"edge-ai-be/pkg/upload"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const systemEventsTopic = "system.events"

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	DeviceController controller.IDeviceController
	ChatController   controller.IChatController
	AdminController  controller.IAdminController

	// Background services, run from main
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	eventPublisher := events.NewPublisher(systemEventsTopic, pubSub)

	// In-memory session storage, TTL from config
	sessionRepo := memory.NewSessionRepository(cfg.Session.Expiry)

	var verifier service.CredentialVerifier = service.AcceptAllVerifier{}
	if cfg.Session.PasswordHash != "" {
		verifier = service.NewSharedSecretVerifier(cfg.Session.PasswordHash)
	}

	responseProvider := airesponse.NewMockProvider()
	imageValidator := upload.NewImageValidator(cfg.Upload.MaxUploadSize, cfg.Upload.AllowedImageTypes)

	// Services
	authService := service.NewAuthService(uowFactory, sessionRepo, verifier, eventPublisher, sysLogger)
	deviceService := service.NewDeviceService(uowFactory, eventPublisher, sysLogger, cfg.Device.ConnectDelay, cfg.Device.ScanDelay)
	chatService := service.NewChatService(uowFactory, responseProvider)
	adminService := service.NewAdminService(uowFactory)
	consumerService := service.NewConsumerService(pubSub, systemEventsTopic, sysLogger)

	sessionMW := serverutils.SessionMiddleware(authService)

	return &Container{
		AuthController:   controller.NewAuthController(authService, sessionMW),
		DeviceController: controller.NewDeviceController(deviceService, sessionMW),
		ChatController:   controller.NewChatController(chatService, imageValidator, sessionMW),
		AdminController:  controller.NewAdminController(adminService, deviceService, sessionMW),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
