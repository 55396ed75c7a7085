package middlewares

import (
	"mediflow-service/internal/app/services/shared/ratelimiter"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
)

// LimitWrites applies the Redis fixed-window limiter to record-creating
// endpoints so a single caller cannot flood the store inside one window. The
// global per-IP httprate limiter on the router still applies on top.
func (m *Middlewares) LimitWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		out, err := m.WriteLimiter.ApplyWriteLimiter(r.Context(), &ratelimiter.ApplyWriteLimiterInput{
			ClientKey:         ip,
			LimiterGroupName:  constvars.RateLimiterGroupWrite,
			WindowDurationSec: m.InternalConfig.App.WriteRateWindowSecs,
			MaxQuota:          m.InternalConfig.App.WriteRateLimit,
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !out.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
