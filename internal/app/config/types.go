package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	App struct {
		Env                 string
		Port                string
		FrontendURL         string
		MaxRequests         int
		ShutdownTimeout     int
		WriteRateLimit      int
		WriteRateWindowSecs int
	}

	MongoDB struct {
		URI    string
		DbName string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level string
	}
)
