package main

import (
	"context"
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/delivery/http/middlewares"
	"mediflow-service/internal/app/delivery/http/routers"
	"mediflow-service/internal/app/drivers/database"
	"mediflow-service/internal/app/drivers/logger"
	"mediflow-service/internal/app/services/core/observations"
	"mediflow-service/internal/app/services/core/patients"
	"mediflow-service/internal/app/services/shared/ratelimiter"
	sharedredis "mediflow-service/internal/app/services/shared/redis"
	"net/http"
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

	startupLog := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig, startupLog)
	redisClient := database.NewRedisClient(driverConfig, startupLog)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	zapLogger.Info("resolved CORS origins",
		zap.Strings("origins", routers.AllowedOrigins(internalConfig)),
	)

	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			startupLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	startupLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		startupLog.Fatalf("Server forced to shutdown: %v", err)
	}

	startupLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	writeLimiter := ratelimiter.NewWriteLimiter(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, writeLimiter, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Observation
	observationMongoRepository := observations.NewObservationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	observationUsecase := observations.NewObservationUsecase(observationMongoRepository, patientUsecase, bootstrap.Logger)
	observationController := observations.NewObservationController(bootstrap.Logger, observationUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController, observationController)
}
