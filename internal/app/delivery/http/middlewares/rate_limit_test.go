package middlewares

import (
	"context"
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/services/shared/ratelimiter"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	counts map[string]int64
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}

func TestLimitWrites(t *testing.T) {
	newMiddlewares := func(limit int) *Middlewares {
		redis := &fakeRedisRepository{counts: make(map[string]int64)}
		return &Middlewares{
			Log:          zap.NewNop(),
			WriteLimiter: ratelimiter.NewWriteLimiter(redis, zap.NewNop()),
			InternalConfig: &config.InternalConfig{
				App: config.App{
					WriteRateLimit:      limit,
					WriteRateWindowSecs: 60,
				},
			},
		}
	}

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("Allows Within Quota", func(t *testing.T) {
		handler := newMiddlewares(2).LimitWrites(okHandler)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("POST", "/patients", nil)
			req.RemoteAddr = "10.0.0.1:52000"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusCreated, rr.Code)
		}
	})

	t.Run("Rejects Over Quota With Retry After", func(t *testing.T) {
		handler := newMiddlewares(1).LimitWrites(okHandler)

		req := httptest.NewRequest("POST", "/patients", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)

		req = httptest.NewRequest("POST", "/patients", nil)
		req.RemoteAddr = "10.0.0.1:52001"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	})
}
