package main

import (
	"context"
	"net/http"
	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/delivery/http/controllers"
	"nutricare-service/internal/app/delivery/http/middlewares"
	"nutricare-service/internal/app/delivery/http/routers"
	"nutricare-service/internal/app/drivers/database"
	"nutricare-service/internal/app/drivers/logger"
	smtpdriver "nutricare-service/internal/app/drivers/mailer"
	"nutricare-service/internal/app/drivers/messaging"
	miniodriver "nutricare-service/internal/app/drivers/storage"
	"nutricare-service/internal/app/services/core/appointments"
	"nutricare-service/internal/app/services/core/auth"
	"nutricare-service/internal/app/services/core/availabilities"
	"nutricare-service/internal/app/services/core/nutritionists"
	"nutricare-service/internal/app/services/core/nutritionrecords"
	"nutricare-service/internal/app/services/core/profiles"
	"nutricare-service/internal/app/services/core/reminders"
	"nutricare-service/internal/app/services/core/session"
	"nutricare-service/internal/app/services/core/users"
	"nutricare-service/internal/app/services/shared/locker"
	"nutricare-service/internal/app/services/shared/mailer"
	"nutricare-service/internal/app/services/shared/redis"
	"nutricare-service/internal/app/services/shared/smtp"
	"nutricare-service/internal/app/services/shared/storage"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("cannot load configured timezone", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	log.Info("shutdown signal received, waiting for in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("error while closing application resources", zap.Error(err))
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)
	minioStorage := storage.NewMinioStorage(bootstrap.Minio)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		log.Fatal("cannot initialize mailer service", zap.Error(err))
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	profileMongoRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	availabilityMongoRepository := availabilities.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	nutritionRecordMongoRepository := nutritionrecords.NewNutritionRecordMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, sessionService, internalConfig, log)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, log)
	profileUsecase := profiles.NewProfileUsecase(profileMongoRepository, sessionService, minioStorage, internalConfig, log)
	nutritionistUsecase := nutritionists.NewNutritionistUsecase(userMongoRepository, profileMongoRepository, minioStorage, internalConfig, log)
	availabilityUsecase := availabilities.NewAvailabilityUsecase(availabilityMongoRepository, userMongoRepository, sessionService, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		availabilityMongoRepository,
		userMongoRepository,
		sessionService,
		lockerService,
		mailerService,
		internalConfig,
		location,
		log,
	)
	nutritionRecordUsecase := nutritionrecords.NewNutritionRecordUsecase(nutritionRecordMongoRepository, userMongoRepository, sessionService, log)

	// Delivery
	mws := middlewares.NewMiddlewares(log, sessionService, internalConfig)
	routers.SetupRoutes(bootstrap.Router, internalConfig, mws, &routers.Controllers{
		Auth:            controllers.NewAuthController(log, authUsecase),
		User:            controllers.NewUserController(log, userUsecase),
		Nutritionist:    controllers.NewNutritionistController(log, nutritionistUsecase),
		Profile:         controllers.NewProfileController(log, profileUsecase, internalConfig),
		Availability:    controllers.NewAvailabilityController(log, availabilityUsecase),
		Appointment:     controllers.NewAppointmentController(log, appointmentUsecase),
		NutritionRecord: controllers.NewNutritionRecordController(log, nutritionRecordUsecase),
	})

	// Background workers
	reminderWorker := reminders.NewWorker(
		log,
		internalConfig,
		lockerService,
		appointmentMongoRepository,
		userMongoRepository,
		mailerService,
		location,
	)
	reminderWorker.Start(context.Background())
	bootstrap.WorkerStop = reminderWorker.Stop

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	emailConsumer, err := smtp.NewEmailConsumer(bootstrap.RabbitMQ, smtpClient, internalConfig.App.RabbitMQMailerQueue, log)
	if err != nil {
		log.Fatal("cannot initialize email consumer", zap.Error(err))
	}
	if err := emailConsumer.Start(context.Background()); err != nil {
		log.Fatal("cannot start email consumer", zap.Error(err))
	}
	bootstrap.MailConsumerStop = func() {
		if err := emailConsumer.Stop(); err != nil {
			log.Error("error while stopping email consumer", zap.Error(err))
		}
	}
}
