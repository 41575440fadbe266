package bootstrap

import (
	"context"
	"log"

	"tutorhive-be/internal/config"
	"tutorhive-be/internal/controller"
	"tutorhive-be/internal/handler"
	"tutorhive-be/internal/pkg/logger"
	"tutorhive-be/internal/pkg/mailer"
	"tutorhive-be/internal/repository/implementation"
	"tutorhive-be/internal/repository/memory"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/internal/service"
	"tutorhive-be/internal/websocket"
	pktNats "tutorhive-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// mailTopic is the watermill topic the async mail worker consumes.
const mailTopic = "mail_jobs"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	TutorController        controller.ITutorController
	AvailabilityController controller.IAvailabilityController
	BookingController      controller.IBookingController
	PaymentController      controller.IPaymentController
	ReviewController       controller.IReviewController
	ChatController         controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
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
		cfg.SMTP.SenderName,
	)

	// 2. In-process mail queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	tutorCache := memory.NewTutorCache()

	// 4. Services
	publisherService := service.NewPublisherService(mailTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, mailTopic, emailService)

	authService := service.NewAuthService(uowFactory, cfg.Auth)
	userService := service.NewUserService(uowFactory)
	tutorService := service.NewTutorService(uowFactory, tutorCache)
	availabilityService := service.NewAvailabilityService(uowFactory)
	bookingService := service.NewBookingService(uowFactory, natsPub, publisherService)
	paymentService := service.NewPaymentService(uowFactory, natsPub, publisherService, cfg.Midtrans)
	reviewService := service.NewReviewService(uowFactory, tutorCache, natsPub)
	chatService := service.NewChatService(uowFactory, natsPub, wsHub)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container initialized", nil)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		TutorController:        controller.NewTutorController(tutorService, reviewService),
		AvailabilityController: controller.NewAvailabilityController(availabilityService),
		BookingController:      controller.NewBookingController(bookingService),
		PaymentController:      controller.NewPaymentController(paymentService),
		ReviewController:       controller.NewReviewController(reviewService),
		ChatController:         controller.NewChatController(chatService),

		ConsumerService:     consumerService,
		NotificationService: notifService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
