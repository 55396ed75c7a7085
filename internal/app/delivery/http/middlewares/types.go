package middlewares

import (
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	WriteLimiter   *ratelimiter.WriteLimiter
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, writeLimiter *ratelimiter.WriteLimiter, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		WriteLimiter:   writeLimiter,
		InternalConfig: internalConfig,
	}
}
