package logger

import (
	"mediflow-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the startup logger used by driver constructors
// before the zap request logger exists.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log
}
