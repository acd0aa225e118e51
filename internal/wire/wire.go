package wire

import (
	"Agora/internal/api"
	"Agora/internal/api/config"
	"Agora/internal/api/handler"
	"Agora/internal/job"
	"Agora/internal/pkg/cron"
	"Agora/internal/pkg/kafka"
	"Agora/internal/pkg/redis"
	"Agora/internal/repository"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	Producer     *kafka.Producer
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	historyRepo := repository.NewPostHistoryRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	postCache := redis.NewPostViewCache()

	notificationService := service.NewNotificationService(notificationRepo, userRepo, service.DefaultClock)
	postService := service.NewPostService(
		postRepo,
		categoryRepo,
		activityRepo,
		historyRepo,
		subscriberRepo,
		notificationService,
		postCache,
		producer,
		service.DefaultClock,
	)
	activityService := service.NewActivityService(activityRepo)
	userService := service.NewUserService(userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		PostHandler:         handler.NewPostHandler(postService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		ActivityHandler:     handler.NewActivityHandler(activityService),
	}

	router := api.SetupRouter(handlers)

	deliveryHandler := kafka.NewDeliveryHandler(notificationRepo, cfg.Delivery)
	kafkaMgr, err := kafka.NewConsumerManager(cfg, deliveryHandler)
	if err != nil {
		return nil, err
	}

	categoryCounterJob := job.NewCategoryCounterJob(categoryRepo, postRepo)
	cronMgr := cron.NewCronManager(categoryCounterJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		Producer:     producer,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
