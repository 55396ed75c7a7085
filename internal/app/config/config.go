package config

import (
	"mediflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			// No default on purpose: the service cannot run without its
			// store, so NewMongoDB fails fatally when this is empty.
			URI:    utils.GetEnvString("MONGODB_URI", ""),
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "mediflow"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "debug"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8080"),
			FrontendURL:         utils.GetEnvString("FRONTEND_URL", ""),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			WriteRateLimit:      utils.GetEnvInt("APP_WRITE_RATE_LIMIT", 30),
			WriteRateWindowSecs: utils.GetEnvInt("APP_WRITE_RATE_WINDOW_SECONDS", 60),
		},
	}
}
